package deck

import "github.com/tsawler/deckgen/model"

// Palette
var (
	Primary   = model.Color{R: 9, G: 105, B: 218} // GitHub blue
	Secondary = model.Color{R: 31, G: 136, B: 61} // GitHub green
	Danger    = model.Color{R: 209, G: 36, B: 47} // Red
	Warning   = model.Color{R: 251, G: 133, B: 0} // Orange
	Dark      = model.Color{R: 36, G: 41, B: 47}  // Dark gray
	White     = model.Color{R: 255, G: 255, B: 255}
)

// sized returns a font that only sets the size.
func sized(pt model.Points) model.Font {
	return model.Font{Size: pt}
}

func bold(pt model.Points) model.Font {
	return model.Font{Size: pt, Bold: true}
}

// boldColor returns a bold colored font. Each call gets its own color value.
func boldColor(pt model.Points, c model.Color) model.Font {
	return model.Font{Size: pt, Bold: true, Color: &c}
}

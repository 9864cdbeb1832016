package model

import "math"

// EMU is a length in English Metric Units.
type EMU int64

// Conversion factors.
const (
	EMUPerInch  EMU = 914400
	EMUPerPoint EMU = 12700
)

// Inches converts inches to EMU, truncating toward zero.
func Inches(in float64) EMU {
	return EMU(in * float64(EMUPerInch))
}

// Inches returns the length in inches.
func (e EMU) Inches() float64 {
	return float64(e) / float64(EMUPerInch)
}

// Points returns the length in points.
func (e EMU) Points() Points {
	return Points(float64(e) / float64(EMUPerPoint))
}

// Points is a typographic length (1/72 inch).
type Points float64

// EMU converts the length to EMU.
func (p Points) EMU() EMU {
	return EMU(math.Round(float64(p) * float64(EMUPerPoint)))
}

// Hundredths returns the length in hundredths of a point, the unit OOXML
// uses for font sizes and paragraph spacing.
func (p Points) Hundredths() int {
	return int(math.Round(float64(p) * 100))
}

// PointsFromHundredths converts hundredths of a point back to Points.
func PointsFromHundredths(v int) Points {
	return Points(float64(v) / 100)
}

// Rect is a positioned rectangle on a slide
type Rect struct {
	X, Y          EMU // Top-left corner
	Width, Height EMU
}

// NewRect creates a rectangle from inch coordinates.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: Inches(x), Y: Inches(y), Width: Inches(width), Height: Inches(height)}
}

// Right returns the right edge
func (r Rect) Right() EMU {
	return r.X + r.Width
}

// Bottom returns the bottom edge
func (r Rect) Bottom() EMU {
	return r.Y + r.Height
}

// IsZero reports whether the rectangle has no area and no position.
func (r Rect) IsZero() bool {
	return r == Rect{}
}

// Inset shrinks the rectangle by the given horizontal and vertical margins.
// Dimensions never go negative.
func (r Rect) Inset(dx, dy EMU) Rect {
	out := Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Within reports whether r lies entirely inside the outer rectangle.
func (r Rect) Within(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

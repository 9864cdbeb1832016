package model

// ShapeType represents the type of a slide shape
type ShapeType int

const (
	ShapeTypeUnknown ShapeType = iota
	ShapeTypeTextBox
	ShapeTypeTable
)

func (st ShapeType) String() string {
	switch st {
	case ShapeTypeTextBox:
		return "TextBox"
	case ShapeTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Shape is the interface for all free-standing slide shapes
type Shape interface {
	Type() ShapeType
	Bounds() Rect
}

// TextShape is an interface for shapes containing text
type TextShape interface {
	Shape
	GetText() string
}

// TextBox is a positioned text frame
type TextBox struct {
	Frame Rect
	Text  *TextFrame
}

func (t *TextBox) Type() ShapeType { return ShapeTypeTextBox }
func (t *TextBox) Bounds() Rect    { return t.Frame }
func (t *TextBox) GetText() string { return t.Text.Text() }

package model

import "strings"

// Layout identifies the slide layout a slide is based on
type Layout int

const (
	LayoutUnknown Layout = iota
	LayoutTitle
	LayoutTitleAndContent
)

func (l Layout) String() string {
	switch l {
	case LayoutTitle:
		return "Title Slide"
	case LayoutTitleAndContent:
		return "Title and Content"
	default:
		return "Unknown"
	}
}

// Placeholder geometry shared by the slide master and layouts, sized for a
// widescreen slide.
var (
	masterTitleFrame = Rect{X: 838200, Y: 365125, Width: 10515600, Height: 1325563}
	masterBodyFrame  = Rect{X: 838200, Y: 1825625, Width: 10515600, Height: 4351338}
	centerTitleFrame = Rect{X: 1524000, Y: 1122363, Width: 9144000, Height: 2387600}
	subtitleFrame    = Rect{X: 1524000, Y: 3602038, Width: 9144000, Height: 1655762}
)

// TitleFrame returns the title placeholder rectangle for the layout
func (l Layout) TitleFrame() Rect {
	if l == LayoutTitle {
		return centerTitleFrame
	}
	return masterTitleFrame
}

// BodyFrame returns the subtitle or body placeholder rectangle for the layout
func (l Layout) BodyFrame() Rect {
	if l == LayoutTitle {
		return subtitleFrame
	}
	return masterBodyFrame
}

// TitleSize returns the inherited title font size
func (l Layout) TitleSize() Points {
	if l == LayoutTitle {
		return 60
	}
	return 44
}

// BodySize returns the inherited body font size at the given paragraph level
func (l Layout) BodySize(level int) Points {
	if l == LayoutTitle {
		return 24
	}
	switch level {
	case 0:
		return 28
	case 1:
		return 24
	default:
		return 20
	}
}

// Slide represents one page of the presentation
type Slide struct {
	Number int        // 1-indexed slide number
	Layout Layout     // Layout the slide is based on
	Title  *TextFrame // Title placeholder, nil when unused
	Body   *TextFrame // Subtitle or body placeholder, nil when unused
	Shapes []Shape    // Free-standing shapes in z-order
}

// AddShape appends a shape above the existing ones
func (s *Slide) AddShape(shape Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddTextBox adds an empty text box at the given frame and returns it
func (s *Slide) AddTextBox(frame Rect) *TextBox {
	tb := &TextBox{Frame: frame, Text: &TextFrame{}}
	s.AddShape(tb)
	return tb
}

// AddTable adds a table with the given dimensions and returns it
func (s *Slide) AddTable(rows, cols int, frame Rect) *Table {
	table := NewTable(rows, cols, frame)
	s.AddShape(table)
	return table
}

// TitleText returns the plain title text
func (s *Slide) TitleText() string {
	if s.Title == nil {
		return ""
	}
	return s.Title.Text()
}

// Tables returns all table shapes on the slide
func (s *Slide) Tables() []*Table {
	var tables []*Table
	for _, shape := range s.Shapes {
		if table, ok := shape.(*Table); ok {
			tables = append(tables, table)
		}
	}
	return tables
}

// TextBoxes returns all text box shapes on the slide
func (s *Slide) TextBoxes() []*TextBox {
	var boxes []*TextBox
	for _, shape := range s.Shapes {
		if tb, ok := shape.(*TextBox); ok {
			boxes = append(boxes, tb)
		}
	}
	return boxes
}

// ExtractText concatenates title, body and shape text
func (s *Slide) ExtractText() string {
	var sb strings.Builder
	if s.Title != nil {
		sb.WriteString(s.Title.Text())
		sb.WriteString("\n")
	}
	if s.Body != nil {
		sb.WriteString(s.Body.Text())
		sb.WriteString("\n")
	}
	for _, shape := range s.Shapes {
		if te, ok := shape.(TextShape); ok {
			sb.WriteString(te.GetText())
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

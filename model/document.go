package model

import "time"

// Widescreen slide dimensions (13.333in x 7.5in).
var (
	WidescreenWidth  = Inches(13.333)
	WidescreenHeight = Inches(7.5)
)

// Document represents a complete presentation
type Document struct {
	Metadata Metadata
	Width    EMU // Slide width
	Height   EMU // Slide height
	Slides   []*Slide
}

// Metadata contains document-level information
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     []string
	Creator      string // Producing application
	CreationDate time.Time
	ModDate      time.Time
}

// NewDocument creates a new empty widescreen document
func NewDocument() *Document {
	return &Document{
		Width:  WidescreenWidth,
		Height: WidescreenHeight,
		Slides: make([]*Slide, 0),
	}
}

// AddSlide appends a new empty slide with the given layout and returns it
func (d *Document) AddSlide(layout Layout) *Slide {
	slide := &Slide{
		Number: len(d.Slides) + 1,
		Layout: layout,
		Shapes: make([]Shape, 0),
	}
	d.Slides = append(d.Slides, slide)
	return slide
}

// GetSlide returns a slide by number (1-indexed)
func (d *Document) GetSlide(number int) *Slide {
	if number < 1 || number > len(d.Slides) {
		return nil
	}
	return d.Slides[number-1]
}

// SlideCount returns the total number of slides
func (d *Document) SlideCount() int {
	return len(d.Slides)
}

// Bounds returns the slide area as a rectangle at the origin
func (d *Document) Bounds() Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

// ExtractText returns all text content concatenated, slide by slide
func (d *Document) ExtractText() string {
	var text string
	for _, slide := range d.Slides {
		text += slide.ExtractText() + "\n"
	}
	return text
}

// Tables returns all tables from all slides
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, slide := range d.Slides {
		tables = append(tables, slide.Tables()...)
	}
	return tables
}

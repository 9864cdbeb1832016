// Package fit estimates whether slide text fits the frame it is placed in.
//
// The estimate wraps each paragraph greedily at the frame width using glyph
// advances from a fixed-width face scaled to the run size. Wide and
// full-width runes, which includes most emoji, count as one em. The result
// is advisory: PowerPoint renders with real fonts, so a frame reported here
// may still fit, and the reverse.
package fit

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"

	"github.com/tsawler/deckgen/model"
)

// DefaultSize is the font size assumed for text boxes and table cells that do
// not set one.
const DefaultSize model.Points = 18

// LineSpacing is the line height as a multiple of the font size.
const LineSpacing = 1.2

// Default text insets of a:bodyPr and table cell margins.
const (
	InsetX model.EMU = 91440
	InsetY model.EMU = 45720
)

// Warning reports a frame whose text is estimated to overflow.
type Warning struct {
	Slide     int       // 1-indexed slide number
	Shape     string    // title, body, text box N or table N
	Needed    model.EMU // Estimated text height
	Available model.EMU // Frame height inside the insets
}

func (w Warning) String() string {
	return fmt.Sprintf("slide %d: %s needs %.2fin, has %.2fin",
		w.Slide, w.Shape, w.Needed.Inches(), w.Available.Inches())
}

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for _, w := range warnings {
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Checker measures text with a font face.
type Checker struct {
	face font.Face
	em   fixed.Int26_6
}

// New returns a Checker backed by the 7x13 basic font.
func New() *Checker {
	return NewWithFace(basicfont.Face7x13)
}

// NewWithFace returns a Checker measuring with face. The face height is
// taken as one em.
func NewWithFace(face font.Face) *Checker {
	em := face.Metrics().Height
	if em <= 0 {
		em = fixed.I(1)
	}
	return &Checker{face: face, em: em}
}

// Check runs the default Checker over doc.
func Check(doc *model.Document) []Warning {
	return New().Check(doc)
}

// Check returns a warning for every frame in doc whose text overflows.
func (c *Checker) Check(doc *model.Document) []Warning {
	if doc == nil {
		return nil
	}

	var warnings []Warning
	for _, slide := range doc.Slides {
		layout := slide.Layout
		if slide.Title != nil {
			size := func(int) model.Points { return layout.TitleSize() }
			if w, ok := c.checkFrame(layout.TitleFrame(), slide.Title, size); !ok {
				w.Slide, w.Shape = slide.Number, "title"
				warnings = append(warnings, w)
			}
		}
		if slide.Body != nil {
			if w, ok := c.checkFrame(layout.BodyFrame(), slide.Body, layout.BodySize); !ok {
				w.Slide, w.Shape = slide.Number, "body"
				warnings = append(warnings, w)
			}
		}

		boxes, tables := 0, 0
		for _, shape := range slide.Shapes {
			switch s := shape.(type) {
			case *model.TextBox:
				boxes++
				if w, ok := c.checkFrame(s.Frame, s.Text, defaultSize); !ok {
					w.Slide, w.Shape = slide.Number, fmt.Sprintf("text box %d", boxes)
					warnings = append(warnings, w)
				}
			case *model.Table:
				tables++
				if w, ok := c.checkTable(s); !ok {
					w.Slide, w.Shape = slide.Number, fmt.Sprintf("table %d", tables)
					warnings = append(warnings, w)
				}
			}
		}
	}
	return warnings
}

func defaultSize(int) model.Points { return DefaultSize }

func (c *Checker) checkFrame(frame model.Rect, tf *model.TextFrame, size func(level int) model.Points) (Warning, bool) {
	inner := frame.Inset(InsetX, InsetY)
	needed := c.FrameHeight(tf, inner.Width.Points(), size)
	w := Warning{Needed: needed.EMU(), Available: inner.Height}
	return w, w.Needed <= w.Available
}

// checkTable grows each row to its tallest cell and compares the total to
// the table frame.
func (c *Checker) checkTable(t *model.Table) (Warning, bool) {
	var total model.EMU
	for i, row := range t.Rows {
		var rowHeight model.EMU
		if i < len(t.RowHeights) {
			rowHeight = t.RowHeights[i]
		}
		for j, cell := range row {
			if j >= len(t.ColumnWidths) {
				break
			}
			inner := (t.ColumnWidths[j] - 2*InsetX).Points()
			tf := model.TextFrameFromText(cell.Text, cell.Font)
			needed := c.FrameHeight(tf, inner, defaultSize).EMU() + 2*InsetY
			rowHeight = max(rowHeight, needed)
		}
		total += rowHeight
	}

	w := Warning{Needed: total, Available: t.Frame.Height}
	return w, w.Needed <= w.Available
}

// FrameHeight returns the height the paragraphs of tf need when wrapped at
// lineWidth. size supplies the inherited font size per paragraph level.
func (c *Checker) FrameHeight(tf *model.TextFrame, lineWidth model.Points, size func(level int) model.Points) model.Points {
	if tf == nil {
		return 0
	}

	var height model.Points
	for _, p := range tf.Paragraphs {
		inherited := size(p.Level)
		tallest := tallestRun(p, inherited)
		lines := c.Lines(p, lineWidth, inherited)
		height += model.Points(float64(lines)*LineSpacing*float64(tallest)) + p.SpaceBefore + p.SpaceAfter
	}
	return height
}

// tallestRun returns the largest run size in p, or inherited when p has no
// runs.
func tallestRun(p model.Paragraph, inherited model.Points) model.Points {
	if len(p.Runs) == 0 {
		return inherited
	}
	var tallest model.Points
	for _, run := range p.Runs {
		size := run.Font.Size
		if size == 0 {
			size = inherited
		}
		tallest = max(tallest, size)
	}
	return tallest
}

// Lines returns how many lines p wraps to at lineWidth. Runs without a size
// use inherited. An empty paragraph still takes one line.
func (c *Checker) Lines(p model.Paragraph, lineWidth, inherited model.Points) int {
	lb := lineBreaker{width: lineWidth, lines: 1}

	for _, run := range p.Runs {
		size := run.Font.Size
		if size == 0 {
			size = inherited
		}
		for _, r := range run.Text {
			switch {
			case r == '\n':
				lb.breakLine()
			case unicode.IsSpace(r):
				lb.endWord(c.RuneWidth(' ', size))
			default:
				lb.word += c.RuneWidth(r, size)
			}
		}
	}
	lb.endWord(0)
	return lb.lines
}

// lineBreaker does greedy word wrapping over measured widths.
type lineBreaker struct {
	width model.Points
	lines int
	line  model.Points // Committed width of the current line
	word  model.Points // Width of the word being measured
}

func (lb *lineBreaker) endWord(trailing model.Points) {
	if lb.word > 0 && lb.line > 0 && lb.line+lb.word > lb.width {
		lb.lines++
		lb.line = 0
	}
	lb.place()
	// Trailing spaces hang past the margin
	lb.line += trailing
	lb.word = 0
}

// place puts the pending word on the current line. A word wider than the
// line is split across as many lines as it needs.
func (lb *lineBreaker) place() {
	if lb.width > 0 {
		for lb.word > lb.width {
			lb.word -= lb.width
			lb.lines++
		}
	}
	lb.line += lb.word
}

func (lb *lineBreaker) breakLine() {
	lb.endWord(0)
	lb.lines++
	lb.line = 0
}

// RuneWidth returns the advance of r at size.
func (c *Checker) RuneWidth(r rune, size model.Points) model.Points {
	switch {
	case r == '\u200d' || unicode.Is(unicode.Variation_Selector, r) || unicode.Is(unicode.Mn, r):
		return 0
	case isWide(r):
		return size
	}

	adv, ok := c.face.GlyphAdvance(r)
	if !ok {
		return size / 2
	}
	return model.Points(float64(adv) / float64(c.em) * float64(size))
}

// TextWidth returns the advance of s on one line at size.
func (c *Checker) TextWidth(s string, size model.Points) model.Points {
	var w model.Points
	for _, r := range s {
		w += c.RuneWidth(r, size)
	}
	return w
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

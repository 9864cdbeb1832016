package deck

import "github.com/tsawler/deckgen/model"

// slideSpec is one row of a variant's content table.
type slideSpec struct {
	layout    model.Layout
	title     string
	titleFont model.Font

	// Title layout: the subtitle placeholder text. Only its first line
	// takes subtitleFont.
	subtitle     string
	subtitleFont model.Font

	body  []para // Body placeholder paragraphs, nil when the slide has none
	boxes []box
	table *grid
}

// para is a paragraph with a single run. A newline in text is a line break.
type para struct {
	text   string
	level  int
	font   model.Font
	before model.Points
	after  model.Points
}

func (p para) paragraph() model.Paragraph {
	mp := model.NewParagraph(p.text, p.font)
	mp.Level = p.level
	mp.SpaceBefore = p.before
	mp.SpaceAfter = p.after
	return mp
}

// box is a free-standing text box.
type box struct {
	frame model.Rect
	paras []para
}

// grid is a table whose first row is a header filled with the primary color.
type grid struct {
	frame      model.Rect
	widths     []float64 // Column widths in inches
	header     []string
	headerSize model.Points
	rows       [][]string
	rowSize    model.Points
}

// Build assembles the document for a variant. The result is freshly
// allocated, so callers may modify it.
func Build(v Variant) *model.Document {
	doc := model.NewDocument()
	doc.Metadata = v.Metadata()

	for _, spec := range v.slides() {
		spec.build(doc.AddSlide(spec.layout))
	}
	return doc
}

func (v Variant) slides() []slideSpec {
	if v == Improved {
		return improvedSlides()
	}
	return communicationFirstSlides()
}

func (s *slideSpec) build(slide *model.Slide) {
	slide.Title = model.TextFrameFromText(s.title, s.titleFont)

	if s.subtitle != "" {
		slide.Body = model.TextFrameFromText(s.subtitle, s.subtitleFont)
	}
	if s.body != nil {
		slide.Body = textFrame(s.body)
	}

	for _, b := range s.boxes {
		tb := slide.AddTextBox(b.frame)
		tb.Text = textFrame(b.paras)
	}

	if s.table != nil {
		s.table.build(slide)
	}
}

func textFrame(paras []para) *model.TextFrame {
	tf := &model.TextFrame{}
	for _, p := range paras {
		tf.AddParagraph(p.paragraph())
	}
	return tf
}

func (g *grid) build(slide *model.Slide) {
	table := slide.AddTable(len(g.rows)+1, len(g.header), g.frame)
	for col, w := range g.widths {
		table.ColumnWidths[col] = model.Inches(w)
	}

	for col, text := range g.header {
		table.Rows[0][col] = model.Cell{
			Text: text,
			Font: boldColor(g.headerSize, White),
			Fill: fill(Primary),
		}
	}

	for i, row := range g.rows {
		for col, text := range row {
			table.Rows[i+1][col] = model.Cell{Text: text, Font: sized(g.rowSize)}
		}
	}
}

func fill(c model.Color) *model.Color {
	return &c
}

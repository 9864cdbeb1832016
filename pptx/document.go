package pptx

import (
	"sort"
	"strings"

	"github.com/tsawler/deckgen/model"
)

// Document returns a model.Document representation of the PPTX content.
// Title and body placeholders fill Slide.Title and Slide.Body, other shapes
// keep their z-order. Header and footer placeholders are dropped.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Metadata = r.Metadata()
	if w, h := r.SlideSize(); w > 0 && h > 0 {
		doc.Width, doc.Height = w, h
	}

	for _, s := range r.slides {
		slide := doc.AddSlide(s.Layout)

		for _, item := range s.shapesInOrder() {
			if item.table != nil {
				slide.AddShape(modelTable(item.table))
				continue
			}

			block := item.block
			switch {
			case block.IsTitle && slide.Title == nil:
				slide.Title = textFrame(block.Paragraphs)
			case isBodyPlaceholder(block) && slide.Body == nil:
				slide.Body = textFrame(block.Paragraphs)
			case block.IsPlaceholder && !block.IsTitle && !isBodyPlaceholder(block):
				// Header, footer, date and slide number placeholders
			default:
				slide.AddShape(&model.TextBox{
					Frame: model.Rect{
						X:      model.EMU(block.X),
						Y:      model.EMU(block.Y),
						Width:  model.EMU(block.Width),
						Height: model.EMU(block.Height),
					},
					Text: textFrame(block.Paragraphs),
				})
			}
		}
	}

	return doc, nil
}

type slideShape struct {
	z     int
	block *TextBlock
	table *Table
}

// shapesInOrder merges text blocks and tables back into z-order.
func (s *Slide) shapesInOrder() []slideShape {
	shapes := make([]slideShape, 0, len(s.Content)+len(s.Tables))
	for i := range s.Content {
		shapes = append(shapes, slideShape{z: s.Content[i].ZOrder, block: &s.Content[i]})
	}
	for i := range s.Tables {
		shapes = append(shapes, slideShape{z: s.Tables[i].ZOrder, table: &s.Tables[i]})
	}
	sort.SliceStable(shapes, func(i, j int) bool { return shapes[i].z < shapes[j].z })
	return shapes
}

func isBodyPlaceholder(block *TextBlock) bool {
	if !block.IsPlaceholder {
		return false
	}
	switch block.Placeholder {
	case "", "body", "subTitle", "obj":
		return true
	}
	return false
}

func textFrame(paras []Paragraph) *model.TextFrame {
	tf := &model.TextFrame{}
	for _, p := range paras {
		tf.Paragraphs = append(tf.Paragraphs, modelParagraph(p))
	}
	return tf
}

func modelParagraph(p Paragraph) model.Paragraph {
	mp := model.Paragraph{
		Level:       p.Level,
		SpaceBefore: model.PointsFromHundredths(p.SpaceBefore),
		SpaceAfter:  model.PointsFromHundredths(p.SpaceAfter),
	}
	for _, run := range p.Runs {
		mp.Runs = append(mp.Runs, model.Run{Text: run.Text, Font: modelFont(run)})
	}
	return mp
}

func modelFont(run Run) model.Font {
	f := model.Font{
		Size: model.PointsFromHundredths(run.FontSize),
		Bold: run.Bold,
	}
	f.Color = modelColor(run.Color)
	return f
}

func modelColor(hex string) *model.Color {
	if hex == "" {
		return nil
	}
	c, err := model.ParseHex(hex)
	if err != nil {
		return nil
	}
	return &c
}

func modelTable(t *Table) *model.Table {
	table := &model.Table{
		Frame: model.Rect{
			X:      model.EMU(t.X),
			Y:      model.EMU(t.Y),
			Width:  model.EMU(t.Width),
			Height: model.EMU(t.Height),
		},
		Rows: make([][]model.Cell, len(t.Rows)),
	}
	for _, w := range t.ColumnWidths {
		table.ColumnWidths = append(table.ColumnWidths, model.EMU(w))
	}
	for _, h := range t.RowHeights {
		table.RowHeights = append(table.RowHeights, model.EMU(h))
	}

	for i, row := range t.Rows {
		cells := make([]model.Cell, len(row))
		for j, cell := range row {
			cells[j] = modelCell(cell)
		}
		table.Rows[i] = cells
	}
	return table
}

// modelCell keeps the raw paragraph text; TableCell.Text is flattened for
// display.
func modelCell(c TableCell) model.Cell {
	lines := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		var sb strings.Builder
		for _, run := range p.Runs {
			sb.WriteString(run.Text)
		}
		lines[i] = sb.String()
	}

	cell := model.Cell{
		Text: strings.Join(lines, "\n"),
		Fill: modelColor(c.Fill),
	}
	if len(c.Paragraphs) > 0 && len(c.Paragraphs[0].Runs) > 0 {
		cell.Font = modelFont(c.Paragraphs[0].Runs[0])
	}
	return cell
}

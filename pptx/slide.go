package pptx

import (
	"strings"

	"github.com/tsawler/deckgen/model"
)

// Slide represents a parsed slide.
type Slide struct {
	Index   int          // 0-indexed slide number
	Title   string       // Slide title (from title placeholder)
	Layout  model.Layout // Layout the slide is based on
	Content []TextBlock  // Text content in reading order
	Tables  []Table      // Tables on the slide
	Notes   string       // Speaker notes
}

// TextBlock represents a block of text on a slide.
type TextBlock struct {
	Text          string
	Paragraphs    []Paragraph
	IsTitle       bool   // Is this the slide title?
	IsSubtitle    bool   // Is this a subtitle?
	IsPlaceholder bool   // Inherits its frame from the layout
	IsTextBox     bool   // Free-standing text box
	Placeholder   string // Placeholder type (title, body, etc.)
	X, Y          int64  // Position in EMUs
	Width         int64  // Width in EMUs
	Height        int64  // Height in EMUs
	ZOrder        int    // Position among the slide's shapes
}

// Paragraph represents a paragraph within a text block.
type Paragraph struct {
	Text        string
	Level       int    // Bullet/indent level (0 = top level)
	IsBullet    bool   // Has bullet point
	IsNumbered  bool   // Is numbered list
	BulletChar  string // Bullet character (if custom)
	Alignment   string // l, ctr, r, just
	SpaceBefore int    // Hundredths of a point
	SpaceAfter  int    // Hundredths of a point
	Runs        []Run  // Text runs with formatting
}

// Run represents a text run with consistent formatting. Line breaks appear
// as newlines in Text.
type Run struct {
	Text     string
	Bold     bool
	Italic   bool
	FontSize int    // In hundredths of a point
	Color    string // sRGB hex, empty when inherited
}

func (r *Run) sameFormat(other Run) bool {
	return r.Bold == other.Bold && r.Italic == other.Italic &&
		r.FontSize == other.FontSize && r.Color == other.Color
}

// Table represents a table on a slide.
type Table struct {
	Rows         [][]TableCell
	Columns      int
	ColumnWidths []int64 // In EMUs
	RowHeights   []int64 // In EMUs
	X, Y         int64   // Position in EMUs
	Width        int64   // Width in EMUs
	Height       int64   // Height in EMUs
	ZOrder       int     // Position among the slide's shapes
}

// TableCell represents a cell in a table.
type TableCell struct {
	Text       string
	Paragraphs []Paragraph
	Fill       string // sRGB hex of a solid fill
	RowSpan    int
	ColSpan    int
	IsMerged   bool // Part of a merged cell (not the origin)
}

// GetText returns all text from the slide as a single string.
func (s *Slide) GetText() string {
	return s.text(ExtractOptions{IncludeTitles: true})
}

// text renders the slide as plain text: the title, then each block's
// paragraphs with bullets indented by level, tables as tab-separated rows
// and, if requested, the notes.
func (s *Slide) text(opts ExtractOptions) string {
	var result strings.Builder

	if opts.IncludeTitles && s.Title != "" {
		result.WriteString(s.Title + "\n\n")
	}

	for _, block := range s.Content {
		if block.IsTitle || skipBlock(&block, opts) {
			continue
		}
		for _, para := range block.Paragraphs {
			if para.Text == "" {
				continue
			}
			if para.IsBullet || para.IsNumbered {
				bullet := para.BulletChar
				if bullet == "" {
					bullet = "•"
				}
				result.WriteString(strings.Repeat("  ", para.Level) + bullet + " ")
			}
			result.WriteString(para.Text + "\n")
		}
	}

	for _, table := range s.Tables {
		result.WriteString("\n")
		for _, row := range table.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = cell.Text
			}
			result.WriteString(strings.Join(cells, "\t") + "\n")
		}
	}

	if opts.IncludeNotes && s.Notes != "" {
		result.WriteString("\n[Notes: " + s.Notes + "]\n")
	}

	return result.String()
}

// GetMarkdown returns the slide content as markdown.
func (s *Slide) GetMarkdown() string {
	return s.markdown(ExtractOptions{IncludeTitles: true})
}

func (s *Slide) markdown(opts ExtractOptions) string {
	var result strings.Builder

	// Title as H1; a multi-line title continues as plain text
	if s.Title != "" {
		result.WriteString("# " + strings.ReplaceAll(s.Title, "\n", "\n\n") + "\n\n")
	}

	// Content
	for _, block := range s.Content {
		if block.IsTitle {
			continue // Already added
		}
		if skipBlock(&block, opts) {
			continue
		}

		for _, para := range block.Paragraphs {
			if para.Text == "" {
				continue
			}

			if para.IsBullet || para.IsNumbered {
				// Add indentation for bullet levels
				indent := strings.Repeat("  ", para.Level)
				if para.IsNumbered {
					result.WriteString(indent + "1. " + para.Text + "\n")
				} else {
					result.WriteString(indent + "- " + para.Text + "\n")
				}
			} else {
				result.WriteString(para.Text + "\n\n")
			}
		}
	}

	// Tables
	for _, table := range s.Tables {
		result.WriteString("\n" + table.ToMarkdown() + "\n")
	}

	// Notes as blockquote
	if opts.IncludeNotes && s.Notes != "" {
		result.WriteString("\n> **Notes:** ")
		result.WriteString(strings.ReplaceAll(s.Notes, "\n", "\n> "))
		result.WriteString("\n")
	}

	return result.String()
}

// ToMarkdown converts a table to markdown format.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	var result strings.Builder
	writeRow := func(row []TableCell) {
		result.WriteString("|")
		for _, cell := range row {
			result.WriteString(" " + escapeMarkdown(cell.Text) + " |")
		}
		result.WriteString("\n")
	}

	// Header row
	writeRow(t.Rows[0])

	// Separator
	result.WriteString("|")
	for range t.Rows[0] {
		result.WriteString("---|")
	}
	result.WriteString("\n")

	// Data rows
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}

	return result.String()
}

var markdownCellEscaper = strings.NewReplacer("|", "\\|", "\n", " ", "\r", " ")

// escapeMarkdown escapes special markdown characters.
func escapeMarkdown(s string) string {
	return markdownCellEscaper.Replace(s)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

package model

import "strings"

// Font holds run-level character formatting. Zero values inherit from the
// placeholder or master style.
type Font struct {
	Size  Points // 0 means inherited
	Bold  bool
	Color *Color // nil means inherited
}

// IsZero reports whether the font sets no attributes
func (f Font) IsZero() bool {
	return f.Size == 0 && !f.Bold && f.Color == nil
}

// Equal reports whether two fonts apply the same formatting
func (f Font) Equal(other Font) bool {
	if f.Size != other.Size || f.Bold != other.Bold {
		return false
	}
	if f.Color == nil || other.Color == nil {
		return f.Color == nil && other.Color == nil
	}
	return *f.Color == *other.Color
}

// Run is a span of text sharing one font. A newline inside Text is a line
// break within the paragraph.
type Run struct {
	Text string
	Font Font
}

// Paragraph is a sequence of runs with paragraph-level spacing
type Paragraph struct {
	Runs        []Run
	Level       int    // Outline level (0 = top)
	SpaceBefore Points // 0 means inherited
	SpaceAfter  Points // 0 means inherited
}

// NewParagraph creates a single-run paragraph
func NewParagraph(text string, font Font) Paragraph {
	if text == "" {
		return Paragraph{}
	}
	return Paragraph{Runs: []Run{{Text: text, Font: font}}}
}

// Text returns the paragraph text with line breaks as newlines
func (p Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph has no text
func (p Paragraph) IsEmpty() bool {
	for _, r := range p.Runs {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// TextFrame is an ordered list of paragraphs
type TextFrame struct {
	Paragraphs []Paragraph
}

// TextFrameFromText splits text on newlines into paragraphs and applies
// font to the first paragraph only. Later paragraphs inherit their style.
func TextFrameFromText(text string, font Font) *TextFrame {
	tf := &TextFrame{}
	for i, line := range strings.Split(text, "\n") {
		f := Font{}
		if i == 0 {
			f = font
		}
		tf.Paragraphs = append(tf.Paragraphs, NewParagraph(line, f))
	}
	return tf
}

// AddParagraph appends a paragraph and returns a pointer to it
func (tf *TextFrame) AddParagraph(p Paragraph) *Paragraph {
	tf.Paragraphs = append(tf.Paragraphs, p)
	return &tf.Paragraphs[len(tf.Paragraphs)-1]
}

// Text returns the frame text, one paragraph per line
func (tf *TextFrame) Text() string {
	if tf == nil {
		return ""
	}
	lines := make([]string, len(tf.Paragraphs))
	for i, p := range tf.Paragraphs {
		lines[i] = p.Text()
	}
	return strings.Join(lines, "\n")
}

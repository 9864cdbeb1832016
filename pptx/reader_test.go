package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/deckgen/model"
)

// writeZipFile writes a file into a zip archive.
func writeZipFile(t *testing.T, zw *zip.Writer, name, content string) {
	t.Helper()
	w, err := zw.Create(name)
	if err != nil {
		t.Fatalf("Failed to create %s in zip: %v", name, err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
}

// outlineDeck builds n title-and-content slides titled "Slide N", each with
// two bullets and one nested bullet.
func outlineDeck(n int) *model.Document {
	doc := model.NewDocument()
	doc.Metadata.Title = "Outline"
	for i := 1; i <= n; i++ {
		slide := doc.AddSlide(model.LayoutTitleAndContent)
		slide.Title = model.TextFrameFromText(fmt.Sprintf("Slide %d", i), model.Font{})
		slide.Body = model.TextFrameFromText("First bullet point\nSecond bullet point", model.Font{Size: 20})
		slide.Body.AddParagraph(model.Paragraph{
			Runs:  []model.Run{{Text: "Nested detail"}},
			Level: 1,
		})
	}
	return doc
}

// tableDeck builds one slide holding a 2x2 table with a filled header row.
func tableDeck(t *testing.T) *model.Document {
	t.Helper()
	doc := model.NewDocument()
	slide := doc.AddSlide(model.LayoutTitleAndContent)
	slide.Title = model.TextFrameFromText("Tools", model.Font{})

	table := slide.AddTable(2, 2, model.NewRect(0.5, 1.5, 8, 2))
	cells := [][]string{{"Header 1", "Header 2"}, {"Issues", "Templates"}}
	for r, row := range cells {
		for c, text := range row {
			cell := model.Cell{Text: text}
			if r == 0 {
				cell.Font = model.Font{Bold: true}
				cell.Fill = model.RGB(9, 105, 218)
			}
			if err := table.SetCell(r, c, cell); err != nil {
				t.Fatalf("SetCell(%d, %d) failed: %v", r, c, err)
			}
		}
	}
	return doc
}

// saveDeck writes doc to a temp file and returns its path.
func saveDeck(t *testing.T, doc *model.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	return path
}

// openDeck serializes doc and opens it in memory.
func openDeck(t *testing.T, doc *model.Document) *Reader {
	t.Helper()
	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	return openBytes(t, data)
}

func TestOpen(t *testing.T) {
	r, err := Open(saveDeck(t, outlineDeck(1)))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer r.Close()

	if r.SlideCount() != 1 {
		t.Errorf("SlideCount() = %d, want 1", r.SlideCount())
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	notZip := filepath.Join(dir, "plain.pptx")
	if err := os.WriteFile(notZip, []byte("not a zip file"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nonexistent.pptx")},
		{"not a zip", notZip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Open(tt.path); err == nil {
				t.Errorf("Open(%q) expected error", tt.path)
			}
		})
	}
}

func TestNewReader_InvalidPackage(t *testing.T) {
	tests := []struct {
		name  string
		parts map[string]string
	}{
		{"missing presentation", map[string]string{"[Content_Types].xml": "<Types/>"}},
		{"no slides", map[string]string{
			"[Content_Types].xml":  "<Types/>",
			"ppt/presentation.xml": "<presentation/>",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildPPTX(t, tt.parts)
			if _, err := NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
				t.Error("NewReader() expected error")
			}
		})
	}
}

func TestReader_Close(t *testing.T) {
	r, err := Open(saveDeck(t, outlineDeck(1)))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if err := r.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	// Second close should be safe
	if err := r.Close(); err != nil {
		t.Errorf("Second Close() failed: %v", err)
	}
}

func TestReader_SlideCount(t *testing.T) {
	for _, n := range []int{1, 3, 12} {
		t.Run(fmt.Sprintf("%d slides", n), func(t *testing.T) {
			r := openDeck(t, outlineDeck(n))
			if got := r.SlideCount(); got != n {
				t.Errorf("SlideCount() = %d, want %d", got, n)
			}
		})
	}
}

func TestReader_Slide(t *testing.T) {
	r := openDeck(t, outlineDeck(3))

	for i := 0; i < 3; i++ {
		slide, err := r.Slide(i)
		if err != nil {
			t.Fatalf("Slide(%d) failed: %v", i, err)
		}
		if want := fmt.Sprintf("Slide %d", i+1); slide.Title != want {
			t.Errorf("Slide(%d).Title = %q, want %q", i, slide.Title, want)
		}
		if slide.Layout != model.LayoutTitleAndContent {
			t.Errorf("Slide(%d).Layout = %s", i, slide.Layout)
		}
	}

	for _, i := range []int{-1, 3} {
		if _, err := r.Slide(i); err == nil {
			t.Errorf("Slide(%d) expected error", i)
		}
	}
}

func TestReader_Text(t *testing.T) {
	r := openDeck(t, outlineDeck(1))

	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text() failed: %v", err)
	}
	for _, want := range []string{"Slide 1", "First bullet point", "Nested detail"} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q, got: %s", want, text)
		}
	}
}

func TestReader_TextWithOptions(t *testing.T) {
	r := openDeck(t, outlineDeck(3))

	text, err := r.TextWithOptions(ExtractOptions{
		SlideNumbers:  []int{0, 2},
		IncludeTitles: true,
	})
	if err != nil {
		t.Fatalf("TextWithOptions() failed: %v", err)
	}
	if !strings.Contains(text, "Slide 1") || !strings.Contains(text, "Slide 3") {
		t.Errorf("TextWithOptions() missing selected slides, got: %s", text)
	}
	if strings.Contains(text, "Slide 2") {
		t.Errorf("TextWithOptions() should skip Slide 2, got: %s", text)
	}

	untitled, err := r.TextWithOptions(ExtractOptions{})
	if err != nil {
		t.Fatalf("TextWithOptions() failed: %v", err)
	}
	if strings.Contains(untitled, "Slide 1") {
		t.Errorf("titles should be omitted, got: %s", untitled)
	}
}

func TestReader_Markdown(t *testing.T) {
	r := openDeck(t, outlineDeck(2))

	md, err := r.Markdown()
	if err != nil {
		t.Fatalf("Markdown() failed: %v", err)
	}
	if !strings.Contains(md, "# Slide 1") {
		t.Errorf("Markdown() missing title heading, got: %s", md)
	}
	if !strings.Contains(md, "First bullet point") {
		t.Errorf("Markdown() missing bullet content, got: %s", md)
	}
	if !strings.Contains(md, "\n---\n") {
		t.Errorf("Markdown() missing slide separator, got: %s", md)
	}
}

func TestReader_MarkdownFrontMatter(t *testing.T) {
	r := openDeck(t, outlineDeck(3))

	md, err := r.MarkdownWithOptions(ExtractOptions{IncludeMetadata: true})
	if err != nil {
		t.Fatalf("MarkdownWithOptions() failed: %v", err)
	}
	if !strings.HasPrefix(md, "---\ntitle: Outline\n") {
		t.Errorf("Missing YAML front matter, got: %s", md)
	}
	if !strings.Contains(md, "slides: 3") {
		t.Errorf("Missing slides metadata, got: %s", md)
	}

	toc, err := r.MarkdownWithOptions(ExtractOptions{IncludeTableOfContents: true})
	if err != nil {
		t.Fatalf("MarkdownWithOptions() with TOC failed: %v", err)
	}
	if !strings.Contains(toc, "## Table of Contents") {
		t.Errorf("Missing TOC, got: %s", toc)
	}
	if !strings.Contains(toc, "2. [Slide 2](#slide-2)") {
		t.Errorf("Missing TOC entry, got: %s", toc)
	}
}

func TestReader_Metadata(t *testing.T) {
	data := buildPPTX(t, singleSlideParts(titleSlideXML), map[string]string{
		"docProps/core.xml": `<?xml version="1.0"?><cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"><dc:title>Quarterly Review</dc:title><dc:creator>Platform Team</dc:creator><cp:keywords>github, workflow</cp:keywords><dcterms:created xsi:type="dcterms:W3CDTF">2024-03-01T09:30:00Z</dcterms:created></cp:coreProperties>`,
		"docProps/app.xml":  `<?xml version="1.0"?><Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"><Application>deckgen</Application><Slides>1</Slides></Properties>`,
	})
	r := openBytes(t, data)

	meta := r.Metadata()
	if meta.Title != "Quarterly Review" {
		t.Errorf("Title = %q, want %q", meta.Title, "Quarterly Review")
	}
	if meta.Author != "Platform Team" {
		t.Errorf("Author = %q, want %q", meta.Author, "Platform Team")
	}
	if meta.Creator != "deckgen" {
		t.Errorf("Creator = %q, want %q", meta.Creator, "deckgen")
	}
	if len(meta.Keywords) != 2 || meta.Keywords[1] != "workflow" {
		t.Errorf("Keywords = %v, want [github workflow]", meta.Keywords)
	}
	if meta.CreationDate.Year() != 2024 || meta.CreationDate.Hour() != 9 {
		t.Errorf("CreationDate = %v, want 2024-03-01T09:30:00Z", meta.CreationDate)
	}
	if !meta.ModDate.IsZero() {
		t.Errorf("ModDate = %v, want zero", meta.ModDate)
	}
}

func TestReader_Document(t *testing.T) {
	r := openDeck(t, outlineDeck(1))

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	if doc.SlideCount() != 1 {
		t.Fatalf("Document has %d slides, want 1", doc.SlideCount())
	}

	slide := doc.GetSlide(1)
	if got := slide.Title.Text(); got != "Slide 1" {
		t.Errorf("Title = %q, want %q", got, "Slide 1")
	}
	if slide.Body == nil || len(slide.Body.Paragraphs) != 3 {
		t.Fatalf("Body = %+v, want 3 paragraphs", slide.Body)
	}
	if got := slide.Body.Paragraphs[0].Runs[0].Font.Size; got != 20 {
		t.Errorf("first bullet size = %v, want 20", got)
	}
	if slide.Body.Paragraphs[2].Level != 1 {
		t.Errorf("Nested paragraph level = %d, want 1", slide.Body.Paragraphs[2].Level)
	}
	if doc.Width != model.WidescreenWidth || doc.Height != model.WidescreenHeight {
		t.Errorf("Slide size = %dx%d, want widescreen", doc.Width, doc.Height)
	}
}

func TestReader_Table(t *testing.T) {
	r := openDeck(t, tableDeck(t))

	slide, _ := r.Slide(0)
	if len(slide.Tables) != 1 {
		t.Fatalf("Slide has %d tables, want 1", len(slide.Tables))
	}

	table := slide.Tables[0]
	if len(table.Rows) != 2 || table.Columns != 2 {
		t.Errorf("Table is %dx%d, want 2x2", len(table.Rows), table.Columns)
	}
	header := table.Rows[0][0]
	if header.Text != "Header 1" || header.Fill != "0969DA" {
		t.Errorf("header cell = %+v", header)
	}
	if len(header.Paragraphs) != 1 || !header.Paragraphs[0].Runs[0].Bold {
		t.Errorf("header cell should be bold: %+v", header.Paragraphs)
	}
	if body := table.Rows[1][1]; body.Text != "Templates" || body.Fill != "" {
		t.Errorf("body cell = %+v", body)
	}
	if table.X != int64(model.Inches(0.5)) || table.Width != int64(model.Inches(8)) {
		t.Errorf("table geometry = x %d, width %d", table.X, table.Width)
	}
}

func TestSlide_GetText(t *testing.T) {
	r := openDeck(t, tableDeck(t))
	slide, _ := r.Slide(0)

	text := slide.GetText()
	for _, want := range []string{"Tools", "Header 1", "Templates"} {
		if !strings.Contains(text, want) {
			t.Errorf("GetText() missing %q, got: %s", want, text)
		}
	}
}

func TestSlide_GetMarkdown(t *testing.T) {
	r := openDeck(t, tableDeck(t))
	slide, _ := r.Slide(0)

	md := slide.GetMarkdown()
	if !strings.Contains(md, "# Tools") {
		t.Errorf("GetMarkdown() missing title, got: %s", md)
	}
	if !strings.Contains(md, "| Header 1 | Header 2 |") {
		t.Errorf("GetMarkdown() missing table, got: %s", md)
	}
}

func TestTable_ToMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		table Table
		want  string
	}{
		{"empty", Table{}, ""},
		{
			"header and row",
			Table{Columns: 2, Rows: [][]TableCell{
				{{Text: "Tool"}, {Text: "State"}},
				{{Text: "PRs"}, {Text: "a|b"}},
			}},
			"| Tool | State |\n|---|---|\n| PRs | a\\|b |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.table.ToMarkdown(); got != tt.want {
				t.Errorf("ToMarkdown() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello", "hello"},
		{"with|pipe", "with\\|pipe"},
		{"line\nbreak", "line break"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := escapeMarkdown(tt.input); got != tt.want {
				t.Errorf("escapeMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractSlideNumber(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"ppt/slides/slide1.xml", 1},
		{"ppt/slides/slide12.xml", 12},
		{"ppt/slides/slide123.xml", 123},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := extractSlideNumber(tt.path); got != tt.want {
				t.Errorf("extractSlideNumber(%q) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}

func TestPlaceholderKinds(t *testing.T) {
	tests := []struct {
		phType         string
		footer, header bool
	}{
		{"ftr", true, false},
		{"dt", true, false},
		{"sldNum", true, false},
		{"hdr", false, true},
		{"title", false, false},
		{"body", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.phType, func(t *testing.T) {
			if got := isFooterPlaceholder(tt.phType); got != tt.footer {
				t.Errorf("isFooterPlaceholder(%q) = %v, want %v", tt.phType, got, tt.footer)
			}
			if got := isHeaderPlaceholder(tt.phType); got != tt.header {
				t.Errorf("isHeaderPlaceholder(%q) = %v, want %v", tt.phType, got, tt.header)
			}
		})
	}
}

func BenchmarkOpen(b *testing.B) {
	data, err := Marshal(outlineDeck(12))
	if err != nil {
		b.Fatalf("Marshal failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			b.Fatalf("NewReader failed: %v", err)
		}
		r.Close()
	}
}

func BenchmarkText(b *testing.B) {
	data, err := Marshal(outlineDeck(12))
	if err != nil {
		b.Fatalf("Marshal failed: %v", err)
	}
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		b.Fatalf("NewReader failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Text(); err != nil {
			b.Fatalf("Text failed: %v", err)
		}
	}
}

const (
	nsDecl       = `xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`
	relSlideType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
)

// slideWith wraps shape elements in a slide part.
func slideWith(shapes string) string {
	return `<?xml version="1.0"?><p:sld ` + nsDecl + `><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr>` +
		shapes + `</p:spTree></p:cSld></p:sld>`
}

func titleXML(text string) string {
	return `<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title"/><p:cNvSpPr/><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr><p:spPr/>` +
		`<p:txBody><a:bodyPr/><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp>`
}

func textBoxXML(text string) string {
	return `<p:sp><p:nvSpPr><p:cNvPr id="3" name="TextBox"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>` +
		`<p:spPr><a:xfrm><a:off x="914400" y="914400"/><a:ext cx="1828800" cy="914400"/></a:xfrm></p:spPr>` +
		`<p:txBody><a:bodyPr/><a:p><a:r><a:t>` + text + `</a:t></a:r></a:p></p:txBody></p:sp>`
}

const tableXML = `<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="4" name="Table"/></p:nvGraphicFramePr>` +
	`<p:xfrm><a:off x="0" y="0"/><a:ext cx="2000000" cy="500000"/></p:xfrm>` +
	`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/table"><a:tbl>` +
	`<a:tblGrid><a:gridCol w="2000000"/></a:tblGrid><a:tr h="500000"><a:tc><a:txBody><a:bodyPr/>` +
	`<a:p><a:r><a:t>Cell</a:t></a:r></a:p></a:txBody><a:tcPr><a:solidFill><a:srgbClr val="0969DA"/></a:solidFill></a:tcPr></a:tc></a:tr>` +
	`</a:tbl></a:graphicData></a:graphic></p:graphicFrame>`

var titleSlideXML = slideWith(titleXML("Only Slide"))

// singleSlideParts returns the parts of a one-slide package.
func singleSlideParts(slide string) map[string]string {
	return map[string]string{
		"[Content_Types].xml":             `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"ppt/_rels/presentation.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="` + relSlideType + `" Target="slides/slide1.xml"/></Relationships>`,
		"ppt/presentation.xml":            `<?xml version="1.0"?><p:presentation ` + nsDecl + `><p:sldIdLst><p:sldId id="256" r:id="rId1"/></p:sldIdLst></p:presentation>`,
		"ppt/slides/slide1.xml":           slide,
	}
}

// buildPPTX zips the given parts in memory. Later maps override earlier ones.
func buildPPTX(t *testing.T, parts ...map[string]string) []byte {
	t.Helper()

	merged := make(map[string]string)
	for _, p := range parts {
		for name, content := range p {
			merged[name] = content
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range merged {
		writeZipFile(t, zw, name, content)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

func openBytes(t *testing.T, data []byte) *Reader {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("NewReader() failed: %v", err)
	}
	return r
}

func TestNewReader(t *testing.T) {
	r := openBytes(t, buildPPTX(t, singleSlideParts(titleSlideXML)))
	defer r.Close()

	if r.SlideCount() != 1 {
		t.Fatalf("SlideCount() = %d, want 1", r.SlideCount())
	}
	slide, _ := r.Slide(0)
	if slide.Title != "Only Slide" {
		t.Errorf("Title = %q, want %q", slide.Title, "Only Slide")
	}
}

func TestNewReader_InvalidZip(t *testing.T) {
	data := []byte("not a zip file")
	if _, err := NewReader(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("NewReader() expected error for invalid zip")
	}
}

func TestReader_SlideOrderFromPresentation(t *testing.T) {
	data := buildPPTX(t, map[string]string{
		"[Content_Types].xml":             `<Types/>`,
		"ppt/_rels/presentation.xml.rels": `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId7" Type="` + relSlideType + `" Target="slides/slide1.xml"/><Relationship Id="rId8" Type="` + relSlideType + `" Target="slides/slide2.xml"/></Relationships>`,
		"ppt/presentation.xml":            `<p:presentation ` + nsDecl + `><p:sldIdLst><p:sldId id="256" r:id="rId8"/><p:sldId id="257" r:id="rId7"/></p:sldIdLst></p:presentation>`,
		"ppt/slides/slide1.xml":           slideWith(titleXML("Stored first")),
		"ppt/slides/slide2.xml":           slideWith(titleXML("Shown first")),
	})
	r := openBytes(t, data)

	want := []string{"Shown first", "Stored first"}
	for i, title := range want {
		slide, err := r.Slide(i)
		if err != nil {
			t.Fatalf("Slide(%d) failed: %v", i, err)
		}
		if slide.Title != title {
			t.Errorf("Slide(%d).Title = %q, want %q", i, slide.Title, title)
		}
	}
}

func TestReader_SlideOrderFallback(t *testing.T) {
	// No sldIdLst: slides sort by part number, not by name
	data := buildPPTX(t, map[string]string{
		"[Content_Types].xml":    `<Types/>`,
		"ppt/presentation.xml":   `<p:presentation ` + nsDecl + `/>`,
		"ppt/slides/slide10.xml": slideWith(titleXML("Ten")),
		"ppt/slides/slide2.xml":  slideWith(titleXML("Two")),
	})
	r := openBytes(t, data)

	first, _ := r.Slide(0)
	second, _ := r.Slide(1)
	if first.Title != "Two" || second.Title != "Ten" {
		t.Errorf("slide order = [%q %q], want [Two Ten]", first.Title, second.Title)
	}
}

func TestExtractParagraph_LineBreaksAndColor(t *testing.T) {
	rPr := `<a:rPr lang="en-US" sz="2400" b="1"><a:solidFill><a:srgbClr val="0969da"/></a:solidFill></a:rPr>`
	shape := `<p:sp><p:nvSpPr><p:cNvPr id="2" name="Body"/><p:cNvSpPr/><p:nvPr><p:ph idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>` +
		`<p:txBody><a:bodyPr/><a:p><a:pPr><a:spcBef><a:spcPts val="600"/></a:spcBef><a:spcAft><a:spcPts val="1200"/></a:spcAft></a:pPr>` +
		`<a:r>` + rPr + `<a:t>Line one</a:t></a:r><a:br>` + rPr + `</a:br><a:r>` + rPr + `<a:t>Line two</a:t></a:r>` +
		`<a:r><a:rPr sz="1800"/><a:t> tail</a:t></a:r></a:p></p:txBody></p:sp>`
	r := openBytes(t, buildPPTX(t, singleSlideParts(slideWith(shape))))

	slide, _ := r.Slide(0)
	if len(slide.Content) != 1 {
		t.Fatalf("Content blocks = %d, want 1", len(slide.Content))
	}
	para := slide.Content[0].Paragraphs[0]

	if para.Text != "Line one\nLine two tail" {
		t.Errorf("Text = %q", para.Text)
	}
	if para.SpaceBefore != 600 || para.SpaceAfter != 1200 {
		t.Errorf("spacing = %d/%d, want 600/1200", para.SpaceBefore, para.SpaceAfter)
	}
	if len(para.Runs) != 2 {
		t.Fatalf("Runs = %+v, want 2 runs", para.Runs)
	}
	first := para.Runs[0]
	if first.Text != "Line one\nLine two" || !first.Bold || first.FontSize != 2400 || first.Color != "0969DA" {
		t.Errorf("first run = %+v", first)
	}
	if para.Runs[1].Text != " tail" || para.Runs[1].Bold {
		t.Errorf("second run = %+v", para.Runs[1])
	}
}

func TestReader_DocumentKeepsZOrder(t *testing.T) {
	shapes := titleXML("Mixed") + textBoxXML("Above") + tableXML + textBoxXML("Below")
	r := openBytes(t, buildPPTX(t, singleSlideParts(slideWith(shapes))))

	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() failed: %v", err)
	}
	slide := doc.GetSlide(1)

	want := []model.ShapeType{model.ShapeTypeTextBox, model.ShapeTypeTable, model.ShapeTypeTextBox}
	if len(slide.Shapes) != len(want) {
		t.Fatalf("Shapes = %d, want %d", len(slide.Shapes), len(want))
	}
	for i, shape := range slide.Shapes {
		if shape.Type() != want[i] {
			t.Errorf("Shapes[%d] = %s, want %s", i, shape.Type(), want[i])
		}
	}

	box := slide.Shapes[0].(*model.TextBox)
	if box.Frame != model.NewRect(1, 1, 2, 1) {
		t.Errorf("text box frame = %+v", box.Frame)
	}
	table := slide.Shapes[1].(*model.Table)
	if cell := table.Cell(0, 0); cell.Text != "Cell" || cell.Fill == nil || cell.Fill.Hex() != "0969DA" {
		t.Errorf("table cell = %+v", cell)
	}
}

func TestReader_Layout(t *testing.T) {
	parts := singleSlideParts(titleSlideXML)
	parts["ppt/slides/_rels/slide1.xml.rels"] = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/></Relationships>`
	parts["ppt/slideLayouts/slideLayout1.xml"] = `<p:sldLayout ` + nsDecl + ` type="title"><p:cSld name="Title Slide"/></p:sldLayout>`

	r := openBytes(t, buildPPTX(t, parts))
	slide, _ := r.Slide(0)
	if slide.Layout != model.LayoutTitle {
		t.Errorf("Layout = %s, want %s", slide.Layout, model.LayoutTitle)
	}

	r = openBytes(t, buildPPTX(t, singleSlideParts(titleSlideXML)))
	slide, _ = r.Slide(0)
	if slide.Layout != model.LayoutUnknown {
		t.Errorf("Layout without relationships = %s, want %s", slide.Layout, model.LayoutUnknown)
	}
}

func TestReader_Notes(t *testing.T) {
	parts := singleSlideParts(titleSlideXML)
	parts["ppt/slides/_rels/slide1.xml.rels"] = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide" Target="../notesSlides/notesSlide1.xml"/></Relationships>`
	parts["ppt/notesSlides/notesSlide1.xml"] = `<p:notes ` + nsDecl + `><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes"/><p:cNvSpPr/><p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>` +
		`<p:txBody><a:bodyPr/><a:p><a:r><a:t>Speak slowly</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld></p:notes>`

	r := openBytes(t, buildPPTX(t, parts))
	slide, _ := r.Slide(0)
	if slide.Notes != "Speak slowly" {
		t.Errorf("Notes = %q, want %q", slide.Notes, "Speak slowly")
	}

	text, _ := r.TextWithOptions(ExtractOptions{IncludeTitles: true, IncludeNotes: true})
	if !strings.Contains(text, "[Notes: Speak slowly]") {
		t.Errorf("TextWithOptions() missing notes, got: %s", text)
	}
	md, _ := r.MarkdownWithOptions(ExtractOptions{IncludeNotes: true})
	if !strings.Contains(md, "> **Notes:** Speak slowly") {
		t.Errorf("MarkdownWithOptions() missing notes, got: %s", md)
	}
}

func TestResolvePart(t *testing.T) {
	tests := []struct {
		source, target, want string
	}{
		{"ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"ppt/slides/slide1.xml", "../slideLayouts/slideLayout2.xml", "ppt/slideLayouts/slideLayout2.xml"},
		{"ppt/slides/slide1.xml", "/ppt/notesSlides/notesSlide1.xml", "ppt/notesSlides/notesSlide1.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := resolvePart(tt.source, tt.target); got != tt.want {
				t.Errorf("resolvePart(%q, %q) = %q, want %q", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

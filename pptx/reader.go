// Package pptx reads and writes PPTX (Office Open XML Presentation) packages.
package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/deckgen/model"
)

// Part names every presentation package carries.
const (
	partContentTypes = "[Content_Types].xml"
	partPresentation = "ppt/presentation.xml"
	partPresRels     = "ppt/_rels/presentation.xml.rels"
	partCoreProps    = "docProps/core.xml"
	partAppProps     = "docProps/app.xml"
)

// Reader provides access to PPTX document content.
type Reader struct {
	parts        map[string]*zip.File
	closer       io.Closer
	presentation *presentationXML
	slides       []*Slide
	slideRels    map[int]*relationshipsXML // Slide index -> relationships
	layouts      map[string]model.Layout   // Layout part -> layout kind
	coreProps    *corePropertiesXML
	appProps     *appPropertiesXML
	presRels     *relationshipsXML
}

// Open opens a PPTX file for reading.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r, err := newReader(zr.File)
	if err != nil {
		zr.Close()
		return nil, err
	}
	r.closer = zr
	return r, nil
}

// NewReader reads a PPTX package from ra, which holds size bytes.
func NewReader(ra io.ReaderAt, size int64) (*Reader, error) {
	zr, err := zip.NewReader(ra, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newReader(zr.File)
}

func newReader(files []*zip.File) (*Reader, error) {
	r := &Reader{
		parts:     make(map[string]*zip.File, len(files)),
		slideRels: make(map[int]*relationshipsXML),
		layouts:   make(map[string]model.Layout),
	}
	for _, f := range files {
		r.parts[f.Name] = f
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	// Relationships are optional; without them slides sort by part number
	if r.has(partPresRels) {
		r.presRels = &relationshipsXML{}
		if err := r.readXML(partPresRels, r.presRels); err != nil {
			return nil, fmt.Errorf("parsing relationships: %w", err)
		}
	}

	r.presentation = &presentationXML{}
	if err := r.readXML(partPresentation, r.presentation); err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	if err := r.parseSlides(); err != nil {
		return nil, fmt.Errorf("parsing slides: %w", err)
	}

	// Document properties are optional and best effort
	r.coreProps = &corePropertiesXML{}
	if r.readXML(partCoreProps, r.coreProps) != nil {
		r.coreProps = nil
	}
	r.appProps = &appPropertiesXML{}
	if r.readXML(partAppProps, r.appProps) != nil {
		r.appProps = nil
	}

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// validate checks that the package has its main parts and at least one slide.
func (r *Reader) validate() error {
	for _, name := range []string{partContentTypes, partPresentation} {
		if !r.has(name) {
			return fmt.Errorf("missing required file: %s", name)
		}
	}
	for name := range r.parts {
		if isSlidePart(name) {
			return nil
		}
	}
	return fmt.Errorf("no slides found in presentation")
}

func isSlidePart(name string) bool {
	return strings.HasPrefix(name, "ppt/slides/slide") && strings.HasSuffix(name, ".xml")
}

func (r *Reader) has(name string) bool {
	_, ok := r.parts[name]
	return ok
}

// readXML decodes the named part into v.
func (r *Reader) readXML(name string, v any) error {
	f, ok := r.parts[name]
	if !ok {
		return fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return err
	}
	return xml.Unmarshal(data, v)
}

// resolvePart resolves a relationship target against the part that owns the
// relationship.
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}

// slidePaths returns the slide parts in presentation order. The order comes
// from sldIdLst when every entry resolves; otherwise slides are sorted by
// part number.
func (r *Reader) slidePaths() []string {
	if ordered := r.orderedSlidePaths(); len(ordered) > 0 {
		return ordered
	}

	var paths []string
	for name := range r.parts {
		if isSlidePart(name) {
			paths = append(paths, name)
		}
	}
	sort.Slice(paths, func(i, j int) bool {
		return extractSlideNumber(paths[i]) < extractSlideNumber(paths[j])
	})
	return paths
}

func (r *Reader) orderedSlidePaths() []string {
	if r.presentation.SlideIdList == nil || r.presRels == nil {
		return nil
	}

	var paths []string
	for _, id := range r.presentation.SlideIdList.SlideId {
		rel := r.presRels.byID(id.RID)
		if rel == nil {
			return nil
		}
		p := resolvePart(partPresentation, rel.Target)
		if !r.has(p) {
			return nil
		}
		paths = append(paths, p)
	}
	return paths
}

// parseSlides parses every slide part, skipping those that fail to decode.
func (r *Reader) parseSlides() error {
	slidePaths := r.slidePaths()
	r.slides = make([]*Slide, 0, len(slidePaths))

	for _, slidePath := range slidePaths {
		index := len(r.slides)

		var sx slideXML
		if err := r.readXML(slidePath, &sx); err != nil {
			continue
		}
		slide := &Slide{
			Index:   index,
			Content: make([]TextBlock, 0),
			Tables:  make([]Table, 0),
		}
		r.extractShapes(&sx.CSld.SpTree, slide)

		// Relationships carry the layout and the notes
		rels := &relationshipsXML{}
		if r.readXML(relsPartFor(slidePath), rels) == nil {
			r.slideRels[index] = rels
		}
		slide.Layout = r.slideLayout(slidePath, index)
		r.parseSlideNotes(slidePath, index, slide)

		r.slides = append(r.slides, slide)
	}

	if len(r.slides) == 0 {
		return fmt.Errorf("no slides could be parsed")
	}
	return nil
}

// relsPartFor returns the relationships part of a part, e.g.
// ppt/slides/_rels/slide1.xml.rels for ppt/slides/slide1.xml.
func relsPartFor(name string) string {
	return path.Join(path.Dir(name), "_rels", path.Base(name)+".rels")
}

// extractSlideNumber extracts the slide number from a path like "ppt/slides/slide1.xml"
func extractSlideNumber(path string) int {
	name := strings.TrimPrefix(path, "ppt/slides/slide")
	name = strings.TrimSuffix(name, ".xml")
	var num int
	fmt.Sscanf(name, "%d", &num)
	return num
}

// slideLayout resolves the layout kind of a slide through its relationships.
func (r *Reader) slideLayout(slidePath string, index int) model.Layout {
	rel := r.slideRels[index].byType(relSlideLayout)
	if rel == nil {
		return model.LayoutUnknown
	}
	layoutPath := resolvePart(slidePath, rel.Target)
	if layout, ok := r.layouts[layoutPath]; ok {
		return layout
	}

	layout := model.LayoutUnknown
	var l slideLayoutXML
	if r.readXML(layoutPath, &l) == nil {
		layout = layoutFromType(l.Type)
	}
	r.layouts[layoutPath] = layout
	return layout
}

func layoutFromType(t string) model.Layout {
	switch t {
	case "title":
		return model.LayoutTitle
	case "obj", "tx":
		return model.LayoutTitleAndContent
	}
	return model.LayoutUnknown
}

// extractShapes extracts text content from all shapes in the shape tree,
// numbering them in document order.
func (r *Reader) extractShapes(spTree *spTreeXML, slide *Slide) {
	z := 0
	for _, ref := range spTree.order {
		switch ref.kind {
		case kindSp:
			block := r.extractTextBlock(&spTree.Sp[ref.index])
			if block != nil {
				block.ZOrder = z
				z++
				if block.IsTitle && slide.Title == "" {
					slide.Title = block.Text
				}
				slide.Content = append(slide.Content, *block)
			}
		case kindGraphicFrame:
			gf := &spTree.GraphicFrame[ref.index]
			if gf.Graphic.GraphicData.Tbl != nil {
				table := r.extractTable(gf.Graphic.GraphicData.Tbl)
				if gf.Xfrm != nil {
					table.X, table.Y = gf.Xfrm.Off.X, gf.Xfrm.Off.Y
					table.Width, table.Height = gf.Xfrm.Ext.Cx, gf.Xfrm.Ext.Cy
				}
				table.ZOrder = z
				z++
				slide.Tables = append(slide.Tables, table)
			}
		case kindGrpSp:
			// Process grouped shapes (recursive)
			r.extractGroupedShapes(&spTree.GrpSp[ref.index], slide, &z)
		}
	}
}

// extractGroupedShapes flattens a group's text shapes into the slide,
// descending into nested groups after the group's own shapes.
func (r *Reader) extractGroupedShapes(grpSp *grpSpXML, slide *Slide, z *int) {
	for i := range grpSp.Sp {
		if block := r.extractTextBlock(&grpSp.Sp[i]); block != nil {
			block.ZOrder = *z
			*z++
			slide.Content = append(slide.Content, *block)
		}
	}
	for i := range grpSp.GrpSp {
		r.extractGroupedShapes(&grpSp.GrpSp[i], slide, z)
	}
}

// extractTextBlock extracts text from a shape. Empty paragraphs are kept so
// the block can be rebuilt exactly; rendering skips them.
func (r *Reader) extractTextBlock(sp *spXML) *TextBlock {
	if sp.TxBody == nil {
		return nil
	}

	block := &TextBlock{IsTextBox: sp.NvSpPr.CNvSpPr.TxBox == "1"}

	if ph := sp.NvSpPr.NvPr.Ph; ph != nil {
		phType := ph.Type
		block.IsPlaceholder = true
		block.Placeholder = phType
		block.IsTitle = phType == "title" || phType == "ctrTitle"
		block.IsSubtitle = phType == "subTitle"
	}

	if x := sp.SpPr.Xfrm; x != nil {
		block.X, block.Y = x.Off.X, x.Off.Y
		block.Width, block.Height = x.Ext.Cx, x.Ext.Cy
	}

	block.Paragraphs, block.Text = r.extractParagraphs(sp.TxBody.P, "\n")
	return block
}

// extractParagraphs converts paragraphs and joins their non-empty text
// with sep.
func (r *Reader) extractParagraphs(ps []pXML, sep string) ([]Paragraph, string) {
	paras := make([]Paragraph, 0, len(ps))
	var texts []string
	for i := range ps {
		para := r.extractParagraph(&ps[i])
		paras = append(paras, para)
		if para.Text != "" {
			texts = append(texts, para.Text)
		}
	}
	return paras, strings.Join(texts, sep)
}

// extractParagraph extracts text and formatting from a paragraph. Line breaks
// become newlines inside the surrounding run when formatting allows.
func (r *Reader) extractParagraph(p *pXML) Paragraph {
	para := Paragraph{
		Runs: make([]Run, 0),
	}

	// Get paragraph properties
	if p.PPr != nil {
		para.Level = p.PPr.Lvl
		para.Alignment = p.PPr.Algn
		para.SpaceBefore = spacingPoints(p.PPr.SpcBef)
		para.SpaceAfter = spacingPoints(p.PPr.SpcAft)

		// Check for bullets
		if p.PPr.BuNone == nil {
			// Has some kind of bullet unless explicitly none
			if p.PPr.BuAutoNum != nil {
				para.IsNumbered = true
			} else if p.PPr.BuChar != nil {
				para.IsBullet = true
				para.BulletChar = p.PPr.BuChar.Char
			} else if para.Level > 0 {
				// Default to bullet for indented items
				para.IsBullet = true
			}
		}
	}

	// Extract text from runs, breaks and fields in order
	var text strings.Builder
	for _, item := range p.Items {
		switch item.kind {
		case itemRun:
			text.WriteString(item.run.T)
			run := runFromProps(item.run.RPr)
			run.Text = item.run.T
			if last := lastRun(para.Runs); last != nil && last.sameFormat(run) && strings.HasSuffix(last.Text, "\n") {
				last.Text += run.Text
			} else {
				para.Runs = append(para.Runs, run)
			}
		case itemBreak:
			text.WriteString("\n")
			run := runFromProps(item.br.RPr)
			if last := lastRun(para.Runs); last != nil && last.sameFormat(run) {
				last.Text += "\n"
			} else {
				run.Text = "\n"
				para.Runs = append(para.Runs, run)
			}
		case itemField:
			// Include field values (like slide numbers)
			text.WriteString(item.fld.T)
			para.Runs = append(para.Runs, Run{Text: item.fld.T})
		}
	}

	para.Text = strings.TrimSpace(text.String())
	return para
}

func lastRun(runs []Run) *Run {
	if len(runs) == 0 {
		return nil
	}
	return &runs[len(runs)-1]
}

func runFromProps(rPr *rPrXML) Run {
	run := Run{}
	if rPr == nil {
		return run
	}
	if rPr.B != nil && *rPr.B == 1 {
		run.Bold = true
	}
	if rPr.I != nil && *rPr.I == 1 {
		run.Italic = true
	}
	run.FontSize = rPr.Sz
	run.Color = fillColor(rPr.SolidFill)
	return run
}

// fillColor returns the sRGB hex value of a solid fill, or "".
func fillColor(fill *solidFillXML) string {
	if fill == nil || fill.SrgbClr == nil {
		return ""
	}
	return strings.ToUpper(fill.SrgbClr.Val)
}

// spacingPoints returns point spacing in hundredths of a point. Percentage
// spacing is not representable and yields 0.
func spacingPoints(s *spacingXML) int {
	if s == nil || s.SpcPts == nil {
		return 0
	}
	return s.SpcPts.Val
}

// extractTable extracts a table from a graphic frame.
func (r *Reader) extractTable(tbl *tblXML) Table {
	table := Table{
		Columns: len(tbl.TblGrid.GridCol),
		Rows:    make([][]TableCell, 0, len(tbl.Tr)),
	}
	for _, col := range tbl.TblGrid.GridCol {
		table.ColumnWidths = append(table.ColumnWidths, col.W)
	}

	for _, tr := range tbl.Tr {
		table.RowHeights = append(table.RowHeights, tr.H)
		row := make([]TableCell, 0, len(tr.Tc))
		for _, tc := range tr.Tc {
			cell := TableCell{
				RowSpan:  max(tc.RowSpan, 1),
				ColSpan:  max(tc.GridSpan, 1),
				IsMerged: tc.VMerge != nil || tc.HMerge != nil,
			}
			if tc.TcPr != nil {
				cell.Fill = fillColor(tc.TcPr.SolidFill)
			}

			if tc.TxBody != nil {
				cell.Paragraphs, cell.Text = r.extractParagraphs(tc.TxBody.P, " ")
			}

			row = append(row, cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// parseSlideNotes reads the speaker notes linked from a slide.
func (r *Reader) parseSlideNotes(slidePath string, index int, slide *Slide) {
	rel := r.slideRels[index].byType(relNotesSlide)
	if rel == nil {
		return
	}

	var notes notesSlideXML
	if r.readXML(resolvePart(slidePath, rel.Target), &notes) != nil {
		return
	}

	var lines []string
	for _, sp := range notes.CSld.SpTree.Sp {
		// The slide image placeholder has no text worth keeping
		if sp.TxBody == nil || (sp.NvSpPr.NvPr.Ph != nil && sp.NvSpPr.NvPr.Ph.Type == "sldImg") {
			continue
		}
		if _, text := r.extractParagraphs(sp.TxBody.P, "\n"); text != "" {
			lines = append(lines, text)
		}
	}
	slide.Notes = strings.TrimSpace(strings.Join(lines, "\n"))
}

// SlideCount returns the number of slides.
func (r *Reader) SlideCount() int {
	return len(r.slides)
}

// Slide returns the slide at the given index (0-indexed).
func (r *Reader) Slide(index int) (*Slide, error) {
	if index < 0 || index >= len(r.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(r.slides)-1)
	}
	return r.slides[index], nil
}

// SlideSize returns the slide dimensions, or zero when the presentation does
// not declare them.
func (r *Reader) SlideSize() (width, height model.EMU) {
	if r.presentation == nil || r.presentation.SlideSz == nil {
		return 0, 0
	}
	return model.EMU(r.presentation.SlideSz.Cx), model.EMU(r.presentation.SlideSz.Cy)
}

// ExtractOptions holds options for text extraction.
type ExtractOptions struct {
	IncludeNotes           bool  // Include speaker notes
	IncludeTitles          bool  // Include slide titles
	SlideNumbers           []int // Which slides to include (0-indexed, empty = all)
	ExcludeHeaders         bool  // Exclude header placeholders
	ExcludeFooters         bool  // Exclude footer placeholders (footer, date, slide number)
	IncludeMetadata        bool  // Markdown only: YAML front matter
	IncludeTableOfContents bool  // Markdown only: slide index after the front matter
}

// isFooterPlaceholder returns true if the placeholder type is a footer element.
// Footer elements include: ftr (footer), dt (date/time), sldNum (slide number).
func isFooterPlaceholder(phType string) bool {
	switch phType {
	case "ftr", "dt", "sldNum":
		return true
	}
	return false
}

// isHeaderPlaceholder returns true if the placeholder type is a header element.
func isHeaderPlaceholder(phType string) bool {
	switch phType {
	case "hdr":
		return true
	}
	return false
}

func (r *Reader) selectSlides(numbers []int) []*Slide {
	if len(numbers) == 0 {
		return r.slides
	}
	slides := make([]*Slide, 0, len(numbers))
	for _, idx := range numbers {
		if idx >= 0 && idx < len(r.slides) {
			slides = append(slides, r.slides[idx])
		}
	}
	return slides
}

func skipBlock(block *TextBlock, opts ExtractOptions) bool {
	if opts.ExcludeFooters && isFooterPlaceholder(block.Placeholder) {
		return true
	}
	return opts.ExcludeHeaders && isHeaderPlaceholder(block.Placeholder)
}

// Text extracts and returns all text content from the presentation.
func (r *Reader) Text() (string, error) {
	return r.TextWithOptions(ExtractOptions{IncludeTitles: true})
}

// TextWithOptions extracts text content with the specified options. Slides
// are separated by a blank line.
func (r *Reader) TextWithOptions(opts ExtractOptions) (string, error) {
	slides := r.selectSlides(opts.SlideNumbers)
	parts := make([]string, len(slides))
	for i, slide := range slides {
		parts[i] = slide.text(opts)
	}
	return strings.Join(parts, "\n\n"), nil
}

// Markdown returns the presentation content as Markdown.
func (r *Reader) Markdown() (string, error) {
	return r.MarkdownWithOptions(ExtractOptions{IncludeTitles: true})
}

// frontMatter is the YAML header emitted with IncludeMetadata.
type frontMatter struct {
	Title     string   `yaml:"title,omitempty"`
	Author    string   `yaml:"author,omitempty"`
	Subject   string   `yaml:"subject,omitempty"`
	Keywords  []string `yaml:"keywords,omitempty"`
	Generator string   `yaml:"generator,omitempty"`
	Slides    int      `yaml:"slides"`
}

// MarkdownWithOptions returns presentation content as Markdown with options.
func (r *Reader) MarkdownWithOptions(opts ExtractOptions) (string, error) {
	var result strings.Builder

	if opts.IncludeMetadata {
		meta := r.Metadata()
		data, err := yaml.Marshal(frontMatter{
			Title:     meta.Title,
			Author:    meta.Author,
			Subject:   meta.Subject,
			Keywords:  meta.Keywords,
			Generator: meta.Creator,
			Slides:    len(r.slides),
		})
		if err != nil {
			return "", fmt.Errorf("encoding front matter: %w", err)
		}
		result.WriteString("---\n")
		result.Write(data)
		result.WriteString("---\n\n")
	}

	// Add table of contents if requested
	if opts.IncludeTableOfContents && len(r.slides) > 1 {
		result.WriteString("## Table of Contents\n\n")
		for i, slide := range r.slides {
			title := firstLine(slide.Title)
			if title == "" {
				title = fmt.Sprintf("Slide %d", i+1)
			}
			anchor := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
			result.WriteString(fmt.Sprintf("%d. [%s](#%s)\n", i+1, title, anchor))
		}
		result.WriteString("\n---\n\n")
	}

	for i, slide := range r.selectSlides(opts.SlideNumbers) {
		if i > 0 {
			result.WriteString("\n---\n\n")
		}
		result.WriteString(slide.markdown(opts))
	}

	return strings.TrimSpace(result.String()), nil
}

// Metadata returns document metadata.
func (r *Reader) Metadata() model.Metadata {
	meta := model.Metadata{}
	if r.coreProps != nil {
		meta.Title = r.coreProps.Title
		meta.Author = r.coreProps.Creator
		meta.Subject = r.coreProps.Subject
		if r.coreProps.Keywords != "" {
			meta.Keywords = strings.Split(r.coreProps.Keywords, ",")
			for i, kw := range meta.Keywords {
				meta.Keywords[i] = strings.TrimSpace(kw)
			}
		}
		meta.CreationDate = parseW3CDTF(r.coreProps.Created)
		meta.ModDate = parseW3CDTF(r.coreProps.Modified)
	}
	if r.appProps != nil {
		meta.Creator = r.appProps.Application
	}
	return meta
}

func parseW3CDTF(s string) time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/deckgen/model"
)

// Identifiers of the shared master and the first slide. Layout ids live in
// the master template.
const (
	masterID     = 2147483648
	firstSlideID = 256
	defaultLang  = "en-US"
	w3cdtfLayout = "2006-01-02T15:04:05Z"
	notesSizeCx  = 6858000
	notesSizeCy  = 9144000
)

// zipEpoch is the modification time stamped on every archive entry so that
// identical documents produce identical bytes.
var zipEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// layoutParts maps a slide layout to its part number under ppt/slideLayouts.
var layoutParts = map[model.Layout]int{
	model.LayoutTitle:           1,
	model.LayoutTitleAndContent: 2,
}

// part is one file of the package.
type part struct {
	name string
	data []byte
}

// Write serializes doc as a PPTX package to w.
func Write(w io.Writer, doc *model.Document) error {
	parts, err := packageParts(doc)
	if err != nil {
		return err
	}

	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing ZIP archive: %w", err)
	}
	return nil
}

// Marshal returns the PPTX encoding of doc.
func Marshal(doc *model.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes doc to filename, replacing any existing file.
func Save(filename string, doc *model.Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	return nil
}

// packageParts renders every part of the package in archive order.
func packageParts(doc *model.Document) ([]part, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}
	if len(doc.Slides) == 0 {
		return nil, fmt.Errorf("presentation has no slides")
	}

	var parts []part
	add := func(name string, v any) error {
		data, err := marshalPart(v)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		parts = append(parts, part{name: name, data: data})
		return nil
	}
	addTemplate := func(name, tmpl string) error {
		data, err := templatePart(tmpl)
		if err != nil {
			return err
		}
		parts = append(parts, part{name: name, data: data})
		return nil
	}

	if err := add("[Content_Types].xml", contentTypes(len(doc.Slides))); err != nil {
		return nil, err
	}
	if err := add("_rels/.rels", packageRels()); err != nil {
		return nil, err
	}
	if err := add("docProps/core.xml", coreProps(doc.Metadata)); err != nil {
		return nil, err
	}
	if err := add("docProps/app.xml", appProps(doc)); err != nil {
		return nil, err
	}
	if err := add("ppt/presentation.xml", presentation(doc)); err != nil {
		return nil, err
	}
	if err := add("ppt/_rels/presentation.xml.rels", presentationRels(len(doc.Slides))); err != nil {
		return nil, err
	}

	for _, t := range []struct{ name, tmpl string }{
		{"ppt/presProps.xml", "presProps.xml"},
		{"ppt/viewProps.xml", "viewProps.xml"},
		{"ppt/tableStyles.xml", "tableStyles.xml"},
		{"ppt/theme/theme1.xml", "theme1.xml"},
		{"ppt/slideMasters/slideMaster1.xml", "slideMaster1.xml"},
	} {
		if err := addTemplate(t.name, t.tmpl); err != nil {
			return nil, err
		}
	}
	if err := add("ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels()); err != nil {
		return nil, err
	}
	for i := 1; i <= len(layoutParts); i++ {
		name := fmt.Sprintf("slideLayout%d.xml", i)
		if err := addTemplate("ppt/slideLayouts/"+name, name); err != nil {
			return nil, err
		}
		rels := relationshipsW{Xmlns: nsPackageRels, Relationship: []relW{
			{ID: "rId1", Type: relSlideMaster, Target: "../slideMasters/slideMaster1.xml"},
		}}
		if err := add("ppt/slideLayouts/_rels/"+name+".rels", rels); err != nil {
			return nil, err
		}
	}

	for i, slide := range doc.Slides {
		n := i + 1
		sld, err := slidePart(slide)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", n, err)
		}
		if err := add(fmt.Sprintf("ppt/slides/slide%d.xml", n), sld); err != nil {
			return nil, err
		}
		layout, ok := layoutParts[slide.Layout]
		if !ok {
			layout = layoutParts[model.LayoutTitleAndContent]
		}
		rels := relationshipsW{Xmlns: nsPackageRels, Relationship: []relW{
			{ID: "rId1", Type: relSlideLayout, Target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", layout)},
		}}
		if err := add(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), rels); err != nil {
			return nil, err
		}
	}

	return parts, nil
}

func marshalPart(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	return append([]byte(xmlHeader), data...), nil
}

func contentTypes(slides int) typesW {
	t := typesW{
		Xmlns: nsContentTypes,
		Default: []defaultW{
			{Extension: "rels", ContentType: ctRelationships},
			{Extension: "xml", ContentType: ctXML},
		},
		Override: []overrideW{
			{PartName: "/ppt/presentation.xml", ContentType: ctPresentation},
			{PartName: "/ppt/slideMasters/slideMaster1.xml", ContentType: ctSlideMaster},
		},
	}
	for i := 1; i <= len(layoutParts); i++ {
		t.Override = append(t.Override, overrideW{
			PartName:    fmt.Sprintf("/ppt/slideLayouts/slideLayout%d.xml", i),
			ContentType: ctSlideLayout,
		})
	}
	for i := 1; i <= slides; i++ {
		t.Override = append(t.Override, overrideW{
			PartName:    fmt.Sprintf("/ppt/slides/slide%d.xml", i),
			ContentType: ctSlide,
		})
	}
	t.Override = append(t.Override,
		overrideW{PartName: "/ppt/presProps.xml", ContentType: ctPresProps},
		overrideW{PartName: "/ppt/viewProps.xml", ContentType: ctViewProps},
		overrideW{PartName: "/ppt/theme/theme1.xml", ContentType: ctTheme},
		overrideW{PartName: "/ppt/tableStyles.xml", ContentType: ctTableStyles},
		overrideW{PartName: "/docProps/core.xml", ContentType: ctCoreProps},
		overrideW{PartName: "/docProps/app.xml", ContentType: ctExtendedProps},
	)
	return t
}

func packageRels() relationshipsW {
	return relationshipsW{Xmlns: nsPackageRels, Relationship: []relW{
		{ID: "rId1", Type: relOfficeDocument, Target: "ppt/presentation.xml"},
		{ID: "rId2", Type: relCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: relExtendedProps, Target: "docProps/app.xml"},
	}}
}

// presentationRels lists the master first, then slides, then the shared
// property parts. Slide n uses rId(n+1).
func presentationRels(slides int) relationshipsW {
	rels := relationshipsW{Xmlns: nsPackageRels}
	rels.Relationship = append(rels.Relationship, relW{
		ID: "rId1", Type: relSlideMaster, Target: "slideMasters/slideMaster1.xml",
	})
	for i := 1; i <= slides; i++ {
		rels.Relationship = append(rels.Relationship, relW{
			ID:     slideRelID(i),
			Type:   relSlide,
			Target: fmt.Sprintf("slides/slide%d.xml", i),
		})
	}
	next := slides + 2
	for _, r := range []struct{ typ, target string }{
		{relPresProps, "presProps.xml"},
		{relViewProps, "viewProps.xml"},
		{relTheme, "theme/theme1.xml"},
		{relTableStyles, "tableStyles.xml"},
	} {
		rels.Relationship = append(rels.Relationship, relW{
			ID: "rId" + strconv.Itoa(next), Type: r.typ, Target: r.target,
		})
		next++
	}
	return rels
}

func slideRelID(n int) string {
	return "rId" + strconv.Itoa(n+1)
}

func masterRels() relationshipsW {
	rels := relationshipsW{Xmlns: nsPackageRels}
	for i := 1; i <= len(layoutParts); i++ {
		rels.Relationship = append(rels.Relationship, relW{
			ID:     "rId" + strconv.Itoa(i),
			Type:   relSlideLayout,
			Target: fmt.Sprintf("../slideLayouts/slideLayout%d.xml", i),
		})
	}
	rels.Relationship = append(rels.Relationship, relW{
		ID:     "rId" + strconv.Itoa(len(layoutParts)+1),
		Type:   relTheme,
		Target: "../theme/theme1.xml",
	})
	return rels
}

func presentation(doc *model.Document) presentationW {
	p := presentationW{
		drawingNS:       newDrawingNS(),
		SaveSubsetFonts: "1",
		SldMasterIdLst:  masterListW{SldMasterId: []idRefW{{ID: masterID, RID: "rId1"}}},
		SldSz:           sizeW{Cx: int64(doc.Width), Cy: int64(doc.Height)},
		NotesSz:         sizeW{Cx: notesSizeCx, Cy: notesSizeCy},
	}
	for i := range doc.Slides {
		p.SldIdLst.SldId = append(p.SldIdLst.SldId, idRefW{
			ID:  int64(firstSlideID + i),
			RID: slideRelID(i + 1),
		})
	}
	return p
}

func coreProps(md model.Metadata) corePropsW {
	c := corePropsW{
		XmlnsCP:       nsCoreProps,
		XmlnsDC:       nsDC,
		XmlnsDCTerms:  nsDCTerms,
		XmlnsDCMIType: nsDCMIType,
		XmlnsXSI:      nsXSI,
		Title:         normalize(md.Title),
		Subject:       normalize(md.Subject),
		Creator:       normalize(md.Author),
		Keywords:      normalize(strings.Join(md.Keywords, ", ")),
		Revision:      1,
	}
	if !md.CreationDate.IsZero() {
		c.Created = &dateW{Type: "dcterms:W3CDTF", Value: md.CreationDate.UTC().Format(w3cdtfLayout)}
	}
	if !md.ModDate.IsZero() {
		c.Modified = &dateW{Type: "dcterms:W3CDTF", Value: md.ModDate.UTC().Format(w3cdtfLayout)}
	}
	return c
}

func appProps(doc *model.Document) appPropsW {
	return appPropsW{
		Xmlns:              nsExtendedProps,
		XmlnsVT:            nsDocPropsVTypes,
		Application:        normalize(doc.Metadata.Creator),
		PresentationFormat: "Custom",
		Slides:             len(doc.Slides),
	}
}

// slidePart renders one slide. Shape ids start at 2; id 1 is the shape tree.
func slidePart(slide *model.Slide) (sldW, error) {
	tree := spTreeW{
		NvGrpSpPr: nvGrpSpPrW{CNvPr: cNvPrW{ID: 1, Name: ""}},
	}
	id := 2

	if slide.Title != nil {
		ph := &phW{Type: "title"}
		if slide.Layout == model.LayoutTitle {
			ph.Type = "ctrTitle"
		}
		tree.Shapes = append(tree.Shapes, placeholderShape(id, "Title", ph, slide.Title))
		id++
	}
	if slide.Body != nil {
		name, ph := "Content Placeholder", &phW{Idx: "1"}
		if slide.Layout == model.LayoutTitle {
			name, ph = "Subtitle", &phW{Type: "subTitle", Idx: "1"}
		}
		tree.Shapes = append(tree.Shapes, placeholderShape(id, name, ph, slide.Body))
		id++
	}

	for _, shape := range slide.Shapes {
		switch s := shape.(type) {
		case *model.TextBox:
			tree.Shapes = append(tree.Shapes, textBoxShape(id, s))
		case *model.Table:
			gf, err := tableFrame(id, s)
			if err != nil {
				return sldW{}, err
			}
			tree.Shapes = append(tree.Shapes, gf)
		default:
			return sldW{}, fmt.Errorf("unsupported shape type %s", shape.Type())
		}
		id++
	}

	return sldW{drawingNS: newDrawingNS(), CSld: cSldW{SpTree: tree}}, nil
}

func placeholderShape(id int, name string, ph *phW, tf *model.TextFrame) *spW {
	return &spW{
		NvSpPr: nvSpPrW{
			CNvPr:   cNvPrW{ID: id, Name: fmt.Sprintf("%s %d", name, id-1)},
			CNvSpPr: cNvSpPrW{SpLocks: &spLocksW{NoGrp: "1"}},
			NvPr:    nvPrW{Ph: ph},
		},
		TxBody: textBody(tf, bodyPrW{}),
	}
}

func textBoxShape(id int, tb *model.TextBox) *spW {
	return &spW{
		NvSpPr: nvSpPrW{
			CNvPr:   cNvPrW{ID: id, Name: fmt.Sprintf("TextBox %d", id-1)},
			CNvSpPr: cNvSpPrW{TxBox: "1"},
		},
		SpPr: spPrW{
			Xfrm:     xfrm(tb.Frame),
			PrstGeom: &prstGeomW{Prst: "rect"},
			NoFill:   &struct{}{},
		},
		TxBody: textBody(tb.Text, bodyPrW{Wrap: "square", RtlCol: "0"}),
	}
}

func tableFrame(id int, t *model.Table) (*graphicFrameW, error) {
	if len(t.RowHeights) != len(t.Rows) {
		return nil, fmt.Errorf("table has %d rows but %d row heights", len(t.Rows), len(t.RowHeights))
	}
	tbl := tblW{
		TblPr: tblPrW{FirstRow: "1", BandRow: "1", TableStyleID: defaultTableStyleID},
	}
	for _, w := range t.ColumnWidths {
		tbl.TblGrid.GridCol = append(tbl.TblGrid.GridCol, gridColW{W: int64(w)})
	}
	for i, row := range t.Rows {
		if len(row) != len(t.ColumnWidths) {
			return nil, fmt.Errorf("table row %d has %d cells, want %d", i, len(row), len(t.ColumnWidths))
		}
		tr := trW{H: int64(t.RowHeights[i])}
		for _, cell := range row {
			tc := tcW{
				TxBody: textBody(model.TextFrameFromText(cell.Text, cell.Font), bodyPrW{}),
			}
			if cell.Fill != nil {
				tc.TcPr.SolidFill = solidFill(*cell.Fill)
			}
			tr.Tc = append(tr.Tc, tc)
		}
		tbl.Tr = append(tbl.Tr, tr)
	}

	gf := &graphicFrameW{
		NvGraphicFramePr: nvGraphicFramePrW{
			CNvPr: cNvPrW{ID: id, Name: fmt.Sprintf("Table %d", id-1)},
		},
		Xfrm: *xfrm(t.Frame),
		Graphic: graphicW{GraphicData: graphicDataW{
			URI: uriTable,
			Tbl: tbl,
		}},
	}
	gf.NvGraphicFramePr.CNvGraphicFramePr.Locks.NoGrp = "1"
	return gf, nil
}

func xfrm(r model.Rect) *xfrmW {
	return &xfrmW{
		Off: pointW{X: int64(r.X), Y: int64(r.Y)},
		Ext: sizeW{Cx: int64(r.Width), Cy: int64(r.Height)},
	}
}

// textBody renders a text frame. A body must hold at least one paragraph.
func textBody(tf *model.TextFrame, bodyPr bodyPrW) txBodyW {
	body := txBodyW{BodyPr: bodyPr}
	if tf != nil {
		for _, p := range tf.Paragraphs {
			body.P = append(body.P, paragraph(p))
		}
	}
	if len(body.P) == 0 {
		body.P = []pW{{}}
	}
	return body
}

// paragraph renders runs, turning each newline into an a:br carrying the
// run's formatting.
func paragraph(p model.Paragraph) pW {
	out := pW{}
	if p.Level > 0 || p.SpaceBefore > 0 || p.SpaceAfter > 0 {
		out.PPr = &pPrW{Lvl: p.Level}
		if p.SpaceBefore > 0 {
			out.PPr.SpcBef = &spcW{SpcPts: valW{Val: p.SpaceBefore.Hundredths()}}
		}
		if p.SpaceAfter > 0 {
			out.PPr.SpcAft = &spcW{SpcPts: valW{Val: p.SpaceAfter.Hundredths()}}
		}
	}
	for _, run := range p.Runs {
		props := runProps(run.Font)
		for i, seg := range strings.Split(normalize(run.Text), "\n") {
			if i > 0 {
				out.Items = append(out.Items, &brW{RPr: props})
			}
			if seg != "" {
				out.Items = append(out.Items, &rW{RPr: props, T: seg})
			}
		}
	}
	return out
}

func runProps(f model.Font) rPrW {
	props := rPrW{Lang: defaultLang, Sz: f.Size.Hundredths()}
	if f.Bold {
		props.B = "1"
	}
	if f.Color != nil {
		props.SolidFill = solidFill(*f.Color)
	}
	return props
}

func solidFill(c model.Color) *solidFillW {
	return &solidFillW{SrgbClr: valStrW{Val: c.Hex()}}
}

// normalize returns s in Unicode normalization form C.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// Package pptx reads and writes PPTX (Office Open XML Presentation) documents.
package pptx

import "encoding/xml"

// XML namespaces used in PPTX files.
const (
	nsPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels    = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes   = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsCoreProps      = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	nsExtendedProps  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	nsDocPropsVTypes = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
	nsDC             = "http://purl.org/dc/elements/1.1/"
	nsDCTerms        = "http://purl.org/dc/terms/"
	nsDCMIType       = "http://purl.org/dc/dcmitype/"
	nsXSI            = "http://www.w3.org/2001/XMLSchema-instance"

	uriTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
)

// Relationship types.
const (
	relOfficeDocument = nsRelationships + "/officeDocument"
	relCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relExtendedProps  = nsRelationships + "/extended-properties"
	relSlide          = nsRelationships + "/slide"
	relSlideMaster    = nsRelationships + "/slideMaster"
	relSlideLayout    = nsRelationships + "/slideLayout"
	relTheme          = nsRelationships + "/theme"
	relPresProps      = nsRelationships + "/presProps"
	relViewProps      = nsRelationships + "/viewProps"
	relTableStyles    = nsRelationships + "/tableStyles"
	relNotesSlide     = nsRelationships + "/notesSlide"
)

// presentationXML represents the ppt/presentation.xml file structure.
type presentationXML struct {
	XMLName     xml.Name        `xml:"presentation"`
	SlideIdList *slideIdListXML `xml:"sldIdLst"`
	SlideSz     *slideSzXML     `xml:"sldSz"`
}

type slideIdListXML struct {
	SlideId []slideIdXML `xml:"sldId"`
}

type slideIdXML struct {
	ID  string `xml:"id,attr"`
	RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"` // r:id attribute for relationship
}

type slideSzXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// slideXML represents a ppt/slides/slide*.xml file structure.
type slideXML struct {
	XMLName xml.Name `xml:"sld"`
	CSld    cSldXML  `xml:"cSld"`
}

// slideLayoutXML represents a ppt/slideLayouts/slideLayout*.xml file.
type slideLayoutXML struct {
	XMLName xml.Name `xml:"sldLayout"`
	Type    string   `xml:"type,attr"` // title, obj, twoObj, ...
	CSld    struct {
		Name string `xml:"name,attr"`
	} `xml:"cSld"`
}

type cSldXML struct {
	SpTree spTreeXML `xml:"spTree"`
}

type shapeKind int

const (
	kindSp shapeKind = iota
	kindGraphicFrame
	kindPic
	kindGrpSp
)

// shapeRef records the document position of one spTree child.
type shapeRef struct {
	kind  shapeKind
	index int
}

// spTreeXML represents the shape tree containing all shapes on a slide.
type spTreeXML struct {
	NvGrpSpPr    nvGrpSpPrXML
	Sp           []spXML           // Regular shapes
	Pic          []picXML          // Pictures
	GraphicFrame []graphicFrameXML // Tables, charts, etc.
	GrpSp        []grpSpXML        // Grouped shapes

	order []shapeRef // z-order of the children above
}

// UnmarshalXML decodes the shape tree while keeping the relative order of
// shapes of different kinds.
func (t *spTreeXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "nvGrpSpPr":
				if err := d.DecodeElement(&t.NvGrpSpPr, &el); err != nil {
					return err
				}
			case "sp":
				var sp spXML
				if err := d.DecodeElement(&sp, &el); err != nil {
					return err
				}
				t.order = append(t.order, shapeRef{kindSp, len(t.Sp)})
				t.Sp = append(t.Sp, sp)
			case "graphicFrame":
				var gf graphicFrameXML
				if err := d.DecodeElement(&gf, &el); err != nil {
					return err
				}
				t.order = append(t.order, shapeRef{kindGraphicFrame, len(t.GraphicFrame)})
				t.GraphicFrame = append(t.GraphicFrame, gf)
			case "pic":
				var pic picXML
				if err := d.DecodeElement(&pic, &el); err != nil {
					return err
				}
				t.order = append(t.order, shapeRef{kindPic, len(t.Pic)})
				t.Pic = append(t.Pic, pic)
			case "grpSp":
				var grp grpSpXML
				if err := d.DecodeElement(&grp, &el); err != nil {
					return err
				}
				t.order = append(t.order, shapeRef{kindGrpSp, len(t.GrpSp)})
				t.GrpSp = append(t.GrpSp, grp)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type nvGrpSpPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type cNvPrXML struct {
	ID    int    `xml:"id,attr"`
	Name  string `xml:"name,attr"`
	Title string `xml:"title,attr"`
}

// spXML represents a shape element.
type spXML struct {
	NvSpPr nvSpPrXML  `xml:"nvSpPr"`
	SpPr   spPrXML    `xml:"spPr"`
	TxBody *txBodyXML `xml:"txBody"`
}

type nvSpPrXML struct {
	CNvPr   cNvPrXML   `xml:"cNvPr"`
	CNvSpPr cNvSpPrXML `xml:"cNvSpPr"`
	NvPr    nvPrXML    `xml:"nvPr"`
}

type cNvSpPrXML struct {
	TxBox string `xml:"txBox,attr"` // "1" for text boxes
}

type nvPrXML struct {
	Ph *phXML `xml:"ph"` // Placeholder info
}

type phXML struct {
	Type string `xml:"type,attr"` // title, body, subTitle, ctrTitle, etc.
	Idx  int    `xml:"idx,attr"`
}

type spPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

type xfrmXML struct {
	Off offXML `xml:"off"`
	Ext extXML `xml:"ext"`
}

type offXML struct {
	X int64 `xml:"x,attr"` // X position in EMUs
	Y int64 `xml:"y,attr"` // Y position in EMUs
}

type extXML struct {
	Cx int64 `xml:"cx,attr"` // Width in EMUs
	Cy int64 `xml:"cy,attr"` // Height in EMUs
}

// txBodyXML represents text body content.
type txBodyXML struct {
	BodyPr bodyPrXML `xml:"bodyPr"`
	P      []pXML    `xml:"p"` // Paragraphs
}

type bodyPrXML struct {
	Anchor string `xml:"anchor,attr"` // t, ctr, b (top, center, bottom)
	Wrap   string `xml:"wrap,attr"`   // square, none
}

type textItemKind int

const (
	itemRun textItemKind = iota
	itemBreak
	itemField
)

// textItemXML is one inline child of a paragraph, in document order.
type textItemXML struct {
	kind textItemKind
	run  rXML
	br   brXML
	fld  fldXML
}

// pXML represents a paragraph.
type pXML struct {
	PPr        *pPrXML       // Paragraph properties
	Items      []textItemXML // Runs, line breaks and fields
	EndParaRPr *rPrXML       // End paragraph run properties
}

// UnmarshalXML decodes a paragraph keeping runs and line breaks in order.
func (p *pXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "pPr":
				p.PPr = &pPrXML{}
				if err := d.DecodeElement(p.PPr, &el); err != nil {
					return err
				}
			case "r":
				item := textItemXML{kind: itemRun}
				if err := d.DecodeElement(&item.run, &el); err != nil {
					return err
				}
				p.Items = append(p.Items, item)
			case "br":
				item := textItemXML{kind: itemBreak}
				if err := d.DecodeElement(&item.br, &el); err != nil {
					return err
				}
				p.Items = append(p.Items, item)
			case "fld":
				item := textItemXML{kind: itemField}
				if err := d.DecodeElement(&item.fld, &el); err != nil {
					return err
				}
				p.Items = append(p.Items, item)
			case "endParaRPr":
				p.EndParaRPr = &rPrXML{}
				if err := d.DecodeElement(p.EndParaRPr, &el); err != nil {
					return err
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type pPrXML struct {
	Lvl       int           `xml:"lvl,attr"`    // Bullet level (0-8)
	Algn      string        `xml:"algn,attr"`   // Alignment: l, ctr, r, just
	MarL      int           `xml:"marL,attr"`   // Left margin in EMUs
	Indent    int           `xml:"indent,attr"` // First line indent in EMUs
	SpcBef    *spacingXML   `xml:"spcBef"`      // Space before
	SpcAft    *spacingXML   `xml:"spcAft"`      // Space after
	BuNone    *struct{}     `xml:"buNone"`      // No bullet
	BuChar    *buCharXML    `xml:"buChar"`      // Character bullet
	BuAutoNum *buAutoNumXML `xml:"buAutoNum"`   // Numbered list
}

type spacingXML struct {
	SpcPts *valXML `xml:"spcPts"` // Hundredths of a point
	SpcPct *valXML `xml:"spcPct"` // Thousandths of a percent
}

type valXML struct {
	Val int `xml:"val,attr"`
}

type buCharXML struct {
	Char string `xml:"char,attr"` // Bullet character
}

type buAutoNumXML struct {
	Type    string `xml:"type,attr"`    // arabicPeriod, alphaLcParenR, etc.
	StartAt int    `xml:"startAt,attr"` // Starting number
}

// rXML represents a text run.
type rXML struct {
	RPr *rPrXML `xml:"rPr"` // Run properties
	T   string  `xml:"t"`   // Text content
}

type rPrXML struct {
	Lang      string        `xml:"lang,attr"`
	Sz        int           `xml:"sz,attr"` // Font size in hundredths of a point
	B         *int          `xml:"b,attr"`  // Bold (1 = true)
	I         *int          `xml:"i,attr"`  // Italic (1 = true)
	U         string        `xml:"u,attr"`  // Underline type
	SolidFill *solidFillXML `xml:"solidFill"`
}

type solidFillXML struct {
	SrgbClr   *valStrXML `xml:"srgbClr"`
	SchemeClr *valStrXML `xml:"schemeClr"`
}

type valStrXML struct {
	Val string `xml:"val,attr"`
}

type brXML struct {
	RPr *rPrXML `xml:"rPr"`
}

type fldXML struct {
	Type string `xml:"type,attr"` // slidenum, datetime, etc.
	T    string `xml:"t"`         // Field value
}

// picXML represents a picture element.
type picXML struct {
	NvPicPr  nvPicPrXML  `xml:"nvPicPr"`
	BlipFill blipFillXML `xml:"blipFill"`
}

type nvPicPrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type blipFillXML struct {
	Blip blipXML `xml:"blip"`
}

type blipXML struct {
	Embed string `xml:"embed,attr"` // r:embed relationship ID
}

// graphicFrameXML represents a graphic frame (tables, charts).
type graphicFrameXML struct {
	NvGraphicFramePr nvGraphicFramePrXML `xml:"nvGraphicFramePr"`
	Xfrm             *xfrmXML            `xml:"xfrm"`
	Graphic          graphicXML          `xml:"graphic"`
}

type nvGraphicFramePrXML struct {
	CNvPr cNvPrXML `xml:"cNvPr"`
}

type graphicXML struct {
	GraphicData graphicDataXML `xml:"graphicData"`
}

type graphicDataXML struct {
	URI string  `xml:"uri,attr"`
	Tbl *tblXML `xml:"tbl"` // Table
}

// tblXML represents a table.
type tblXML struct {
	TblGrid tblGridXML `xml:"tblGrid"`
	Tr      []trXML    `xml:"tr"` // Table rows
}

type tblGridXML struct {
	GridCol []gridColXML `xml:"gridCol"`
}

type gridColXML struct {
	W int64 `xml:"w,attr"` // Width in EMUs
}

type trXML struct {
	H  int64   `xml:"h,attr"` // Row height in EMUs
	Tc []tcXML `xml:"tc"`     // Table cells
}

type tcXML struct {
	TxBody   *txBodyXML `xml:"txBody"`
	TcPr     *tcPrXML   `xml:"tcPr"`
	RowSpan  int        `xml:"rowSpan,attr"`
	GridSpan int        `xml:"gridSpan,attr"`
	VMerge   *int       `xml:"vMerge,attr"` // Vertical merge
	HMerge   *int       `xml:"hMerge,attr"` // Horizontal merge
}

type tcPrXML struct {
	SolidFill *solidFillXML `xml:"solidFill"`
}

// grpSpXML represents a group of shapes.
type grpSpXML struct {
	NvGrpSpPr nvGrpSpPrXML `xml:"nvGrpSpPr"`
	GrpSpPr   grpSpPrXML   `xml:"grpSpPr"`
	Sp        []spXML      `xml:"sp"`
	Pic       []picXML     `xml:"pic"`
	GrpSp     []grpSpXML   `xml:"grpSp"` // Nested groups
}

type grpSpPrXML struct {
	Xfrm *xfrmXML `xml:"xfrm"`
}

// notesSlideXML represents a ppt/notesSlides/notesSlide*.xml file.
type notesSlideXML struct {
	XMLName xml.Name `xml:"notes"`
	CSld    cSldXML  `xml:"cSld"`
}

// relationshipsXML represents .rels files.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Relationship []relationshipXML `xml:"Relationship"`
}

type relationshipXML struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// byID returns the relationship with the given id, or nil.
func (r *relationshipsXML) byID(id string) *relationshipXML {
	if r == nil {
		return nil
	}
	for i := range r.Relationship {
		if r.Relationship[i].ID == id {
			return &r.Relationship[i]
		}
	}
	return nil
}

// byType returns the first relationship of the given type, or nil.
func (r *relationshipsXML) byType(relType string) *relationshipXML {
	if r == nil {
		return nil
	}
	for i := range r.Relationship {
		if r.Relationship[i].Type == relType {
			return &r.Relationship[i]
		}
	}
	return nil
}

// corePropertiesXML represents docProps/core.xml.
type corePropertiesXML struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Subject     string   `xml:"subject"`
	Creator     string   `xml:"creator"`
	Keywords    string   `xml:"keywords"`
	Description string   `xml:"description"`
	LastModBy   string   `xml:"lastModifiedBy"`
	Created     string   `xml:"created"`
	Modified    string   `xml:"modified"`
}

// appPropertiesXML represents docProps/app.xml.
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
	Slides      int      `xml:"Slides"`
	Notes       int      `xml:"Notes"`
}

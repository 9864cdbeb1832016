package pptx

import "encoding/xml"

// Writer-side XML structures. Element names carry their conventional
// prefixes so the output matches what Office produces; the root of each part
// declares the prefixes it uses.

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Content types.
const (
	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctXML           = "application/xml"
	ctPresentation  = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctSlide         = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctSlideMaster   = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctSlideLayout   = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctTheme         = "application/vnd.openxmlformats-officedocument.theme+xml"
	ctPresProps     = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ctViewProps     = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ctTableStyles   = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctExtendedProps = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Built-in "Medium Style 2 - Accent 1" table style.
const defaultTableStyleID = "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"

type typesW struct {
	XMLName  xml.Name    `xml:"Types"`
	Xmlns    string      `xml:"xmlns,attr"`
	Default  []defaultW  `xml:"Default"`
	Override []overrideW `xml:"Override"`
}

type defaultW struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type overrideW struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type relationshipsW struct {
	XMLName      xml.Name `xml:"Relationships"`
	Xmlns        string   `xml:"xmlns,attr"`
	Relationship []relW   `xml:"Relationship"`
}

type relW struct {
	ID     string `xml:"Id,attr"`
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// drawingNS holds the namespace declarations shared by PresentationML parts.
type drawingNS struct {
	A string `xml:"xmlns:a,attr"`
	R string `xml:"xmlns:r,attr"`
	P string `xml:"xmlns:p,attr"`
}

func newDrawingNS() drawingNS {
	return drawingNS{A: nsDrawingML, R: nsRelationships, P: nsPresentationML}
}

type presentationW struct {
	XMLName xml.Name `xml:"p:presentation"`
	drawingNS
	SaveSubsetFonts string      `xml:"saveSubsetFonts,attr"`
	SldMasterIdLst  masterListW `xml:"p:sldMasterIdLst"`
	SldIdLst        slideListW  `xml:"p:sldIdLst"`
	SldSz           sizeW       `xml:"p:sldSz"`
	NotesSz         sizeW       `xml:"p:notesSz"`
}

type masterListW struct {
	SldMasterId []idRefW `xml:"p:sldMasterId"`
}

type slideListW struct {
	SldId []idRefW `xml:"p:sldId"`
}

type idRefW struct {
	ID  int64  `xml:"id,attr"`
	RID string `xml:"r:id,attr"`
}

type sizeW struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

type sldW struct {
	XMLName xml.Name `xml:"p:sld"`
	drawingNS
	CSld      cSldW      `xml:"p:cSld"`
	ClrMapOvr clrMapOvrW `xml:"p:clrMapOvr"`
}

type clrMapOvrW struct {
	MasterClrMapping struct{} `xml:"a:masterClrMapping"`
}

type cSldW struct {
	SpTree spTreeW `xml:"p:spTree"`
}

type spTreeW struct {
	NvGrpSpPr nvGrpSpPrW `xml:"p:nvGrpSpPr"`
	GrpSpPr   grpSpPrW   `xml:"p:grpSpPr"`
	Shapes    []any      // *spW and *graphicFrameW in z-order
}

type nvGrpSpPrW struct {
	CNvPr      cNvPrW   `xml:"p:cNvPr"`
	CNvGrpSpPr struct{} `xml:"p:cNvGrpSpPr"`
	NvPr       struct{} `xml:"p:nvPr"`
}

type grpSpPrW struct {
	Xfrm groupXfrmW `xml:"a:xfrm"`
}

type groupXfrmW struct {
	Off   pointW `xml:"a:off"`
	Ext   sizeW  `xml:"a:ext"`
	ChOff pointW `xml:"a:chOff"`
	ChExt sizeW  `xml:"a:chExt"`
}

type cNvPrW struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

type spW struct {
	XMLName xml.Name `xml:"p:sp"`
	NvSpPr  nvSpPrW  `xml:"p:nvSpPr"`
	SpPr    spPrW    `xml:"p:spPr"`
	TxBody  txBodyW  `xml:"p:txBody"`
}

type nvSpPrW struct {
	CNvPr   cNvPrW   `xml:"p:cNvPr"`
	CNvSpPr cNvSpPrW `xml:"p:cNvSpPr"`
	NvPr    nvPrW    `xml:"p:nvPr"`
}

type cNvSpPrW struct {
	TxBox   string    `xml:"txBox,attr,omitempty"`
	SpLocks *spLocksW `xml:"a:spLocks"`
}

type spLocksW struct {
	NoGrp string `xml:"noGrp,attr"`
}

type nvPrW struct {
	Ph *phW `xml:"p:ph"`
}

type phW struct {
	Type string `xml:"type,attr,omitempty"`
	Idx  string `xml:"idx,attr,omitempty"`
}

type spPrW struct {
	Xfrm     *xfrmW     `xml:"a:xfrm"`
	PrstGeom *prstGeomW `xml:"a:prstGeom"`
	NoFill   *struct{}  `xml:"a:noFill"`
}

type xfrmW struct {
	Off pointW `xml:"a:off"`
	Ext sizeW  `xml:"a:ext"`
}

type pointW struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

type prstGeomW struct {
	Prst  string   `xml:"prst,attr"`
	AvLst struct{} `xml:"a:avLst"`
}

type txBodyW struct {
	BodyPr   bodyPrW  `xml:"a:bodyPr"`
	LstStyle struct{} `xml:"a:lstStyle"`
	P        []pW     `xml:"a:p"`
}

type bodyPrW struct {
	Wrap   string `xml:"wrap,attr,omitempty"`
	RtlCol string `xml:"rtlCol,attr,omitempty"`
}

type pW struct {
	PPr   *pPrW `xml:"a:pPr"`
	Items []any // *rW and *brW in order
}

type pPrW struct {
	Lvl    int   `xml:"lvl,attr,omitempty"`
	SpcBef *spcW `xml:"a:spcBef"`
	SpcAft *spcW `xml:"a:spcAft"`
}

type spcW struct {
	SpcPts valW `xml:"a:spcPts"`
}

type valW struct {
	Val int `xml:"val,attr"`
}

type rW struct {
	XMLName xml.Name `xml:"a:r"`
	RPr     rPrW     `xml:"a:rPr"`
	T       string   `xml:"a:t"`
}

type brW struct {
	XMLName xml.Name `xml:"a:br"`
	RPr     rPrW     `xml:"a:rPr"`
}

type rPrW struct {
	Lang      string      `xml:"lang,attr"`
	Sz        int         `xml:"sz,attr,omitempty"`
	B         string      `xml:"b,attr,omitempty"`
	SolidFill *solidFillW `xml:"a:solidFill"`
}

type solidFillW struct {
	SrgbClr valStrW `xml:"a:srgbClr"`
}

type valStrW struct {
	Val string `xml:"val,attr"`
}

type graphicFrameW struct {
	XMLName          xml.Name          `xml:"p:graphicFrame"`
	NvGraphicFramePr nvGraphicFramePrW `xml:"p:nvGraphicFramePr"`
	Xfrm             xfrmW             `xml:"p:xfrm"`
	Graphic          graphicW          `xml:"a:graphic"`
}

type nvGraphicFramePrW struct {
	CNvPr             cNvPrW             `xml:"p:cNvPr"`
	CNvGraphicFramePr cNvGraphicFramePrW `xml:"p:cNvGraphicFramePr"`
	NvPr              struct{}           `xml:"p:nvPr"`
}

type cNvGraphicFramePrW struct {
	Locks struct {
		NoGrp string `xml:"noGrp,attr"`
	} `xml:"a:graphicFrameLocks"`
}

type graphicW struct {
	GraphicData graphicDataW `xml:"a:graphicData"`
}

type graphicDataW struct {
	URI string `xml:"uri,attr"`
	Tbl tblW   `xml:"a:tbl"`
}

type tblW struct {
	TblPr   tblPrW   `xml:"a:tblPr"`
	TblGrid tblGridW `xml:"a:tblGrid"`
	Tr      []trW    `xml:"a:tr"`
}

type tblPrW struct {
	FirstRow     string `xml:"firstRow,attr"`
	BandRow      string `xml:"bandRow,attr"`
	TableStyleID string `xml:"a:tableStyleId"`
}

type tblGridW struct {
	GridCol []gridColW `xml:"a:gridCol"`
}

type gridColW struct {
	W int64 `xml:"w,attr"`
}

type trW struct {
	H  int64 `xml:"h,attr"`
	Tc []tcW `xml:"a:tc"`
}

type tcW struct {
	TxBody txBodyW `xml:"a:txBody"`
	TcPr   tcPrW   `xml:"a:tcPr"`
}

type tcPrW struct {
	SolidFill *solidFillW `xml:"a:solidFill"`
}

type corePropsW struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	XmlnsCP        string   `xml:"xmlns:cp,attr"`
	XmlnsDC        string   `xml:"xmlns:dc,attr"`
	XmlnsDCTerms   string   `xml:"xmlns:dcterms,attr"`
	XmlnsDCMIType  string   `xml:"xmlns:dcmitype,attr"`
	XmlnsXSI       string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator,omitempty"`
	Keywords       string   `xml:"cp:keywords,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy,omitempty"`
	Revision       int      `xml:"cp:revision"`
	Created        *dateW   `xml:"dcterms:created"`
	Modified       *dateW   `xml:"dcterms:modified"`
}

type dateW struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type appPropsW struct {
	XMLName            xml.Name `xml:"Properties"`
	Xmlns              string   `xml:"xmlns,attr"`
	XmlnsVT            string   `xml:"xmlns:vt,attr"`
	Application        string   `xml:"Application,omitempty"`
	PresentationFormat string   `xml:"PresentationFormat"`
	Slides             int      `xml:"Slides"`
	Notes              int      `xml:"Notes"`
	HiddenSlides       int      `xml:"HiddenSlides"`
}

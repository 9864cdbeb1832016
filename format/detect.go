// Package format detects presentation and office package formats.
package format

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a recognized document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PPTX indicates a PowerPoint (.pptx) presentation.
	PPTX
	// ODP indicates an OpenDocument presentation (.odp).
	ODP
	// DOCX indicates a Word (.docx) document.
	DOCX
	// XLSX indicates an Excel (.xlsx) workbook.
	XLSX
	// ODT indicates an OpenDocument text (.odt) document.
	ODT
	// PDF indicates a PDF document.
	PDF
	// HTML indicates an HTML document.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PPTX:
		return "PPTX"
	case ODP:
		return "ODP"
	case DOCX:
		return "DOCX"
	case XLSX:
		return "XLSX"
	case ODT:
		return "ODT"
	case PDF:
		return "PDF"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PPTX:
		return ".pptx"
	case ODP:
		return ".odp"
	case DOCX:
		return ".docx"
	case XLSX:
		return ".xlsx"
	case ODT:
		return ".odt"
	case PDF:
		return ".pdf"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// IsPresentation reports whether the format holds slides.
func (f Format) IsPresentation() bool {
	return f == PPTX || f == ODP
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return PPTX
	case ".odp":
		return ODP
	case ".docx":
		return DOCX
	case ".xlsx":
		return XLSX
	case ".odt":
		return ODT
	case ".pdf":
		return PDF
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

var (
	pdfMagic = []byte("%PDF")
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
)

// DetectFromMagic checks file magic bytes to determine format.
// ZIP-based packages cannot be told apart from their first bytes, so a ZIP
// signature yields Unknown; use DetectFromReader for those.
func DetectFromMagic(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	if bytes.HasPrefix(data, pdfMagic) {
		return PDF
	}

	if bytes.HasPrefix(data, zipMagic) {
		return Unknown
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return false
	}

	// Check for common HTML signatures (case-insensitive)
	upper := strings.ToUpper(string(data[:min(512, len(data))]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}

// DetectFromReader inspects the content to determine format. It can tell
// the ZIP-based packages (PPTX, DOCX, XLSX, ODP, ODT) apart.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// DetectFile opens filename and inspects its content.
func DetectFile(filename string) (Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, err
	}
	return DetectFromReader(f, info.Size())
}

// OpenDocument mimetypes stored uncompressed at the start of the package.
const (
	mimeODP = "application/vnd.oasis.opendocument.presentation"
	mimeODT = "application/vnd.oasis.opendocument.text"
)

// Office Open XML main parts, keyed by the part each format requires.
var ooxmlMainParts = []struct {
	part   string
	prefix string
	format Format
}{
	{"ppt/presentation.xml", "ppt/", PPTX},
	{"word/document.xml", "word/", DOCX},
	{"xl/workbook.xml", "xl/", XLSX},
}

// detectZIPFormat inspects a ZIP archive to determine its package type.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, fmt.Errorf("reading ZIP archive: %w", err)
	}

	names := make(map[string]bool, len(zr.File))
	for _, f := range zr.File {
		names[f.Name] = true

		// OpenDocument packages carry a mimetype file
		if f.Name == "mimetype" {
			switch mime := readMimetype(f); {
			case strings.HasPrefix(mime, mimeODP):
				return ODP, nil
			case strings.HasPrefix(mime, mimeODT):
				return ODT, nil
			}
		}
	}

	if !names["[Content_Types].xml"] {
		return Unknown, nil
	}

	// Prefer the main part; fall back to any file under the format's folder
	for _, m := range ooxmlMainParts {
		if names[m.part] {
			return m.format, nil
		}
	}
	for _, f := range zr.File {
		for _, m := range ooxmlMainParts {
			if strings.HasPrefix(f.Name, m.prefix) {
				return m.format, nil
			}
		}
	}

	return Unknown, nil
}

func readMimetype(f *zip.File) string {
	rc, err := f.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	data := make([]byte, 256)
	n, _ := io.ReadFull(rc, data)
	return strings.TrimSpace(string(data[:n]))
}

package format

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_Names(t *testing.T) {
	tests := []struct {
		format    Format
		name, ext string
	}{
		{PPTX, "PPTX", ".pptx"},
		{ODP, "ODP", ".odp"},
		{DOCX, "DOCX", ".docx"},
		{XLSX, "XLSX", ".xlsx"},
		{ODT, "ODT", ".odt"},
		{PDF, "PDF", ".pdf"},
		{HTML, "HTML", ".html"},
		{Unknown, "Unknown", ""},
		{Format(99), "Unknown", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.format.Extension(); got != tt.ext {
				t.Errorf("Extension() = %q, want %q", got, tt.ext)
			}
			// Extensions map back to their format
			if tt.ext != "" {
				if got := Detect("deck" + tt.ext); got != tt.format {
					t.Errorf("Detect(%q) = %v, want %v", "deck"+tt.ext, got, tt.format)
				}
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"GitHub_Workflow_Communication_First.pptx", PPTX},
		{"GitHub_Workflow_Best_Practices_Improved.PPTX", PPTX},
		{"build/decks/Review.Pptx", PPTX},
		{"slides.ODP", ODP},
		{"notes.Docx", DOCX},
		{"page.htm", HTML},
		{"page.HTM", HTML},
		{"archive.pptx.bak", Unknown},
		{"deck.txt", Unknown},
		{"deck", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf header", []byte("%PDF-1.7\n"), PDF},
		{"bare pdf signature", []byte("%PDF"), PDF},
		{"zip needs inspection", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}, Unknown},
		{"doctype", []byte("<!doctype html>\n<html>"), HTML},
		{"html tag", []byte("<HTML><head>"), HTML},
		{"leading whitespace", []byte("\r\n\t <!DOCTYPE HTML PUBLIC"), HTML},
		{"empty", nil, Unknown},
		{"truncated zip", []byte{0x50, 0x4B}, Unknown},
		{"plain text", []byte("✅ Communication-focused PowerPoint created successfully!"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_NonZIP(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"pdf", "%PDF-1.4\n%%EOF", PDF},
		{"html", "<!DOCTYPE html>\n<html><body></body></html>", HTML},
		{"text", "Presented by: Amna & Hanzla", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFromReader(bytes.NewReader([]byte(tt.data)), int64(len(tt.data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_IsPresentation(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{PPTX, true},
		{ODP, true},
		{DOCX, false},
		{XLSX, false},
		{PDF, false},
		{Unknown, false},
	}

	for _, tt := range tests {
		if got := tt.format.IsPresentation(); got != tt.want {
			t.Errorf("%v.IsPresentation() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

// zipBytes builds an in-memory ZIP archive holding the named files.
func zipBytes(t *testing.T, files ...string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i := 0; i+1 < len(files); i += 2 {
		w, err := zw.Create(files[i])
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", files[i], err)
		}
		if _, err := w.Write([]byte(files[i+1])); err != nil {
			t.Fatalf("Failed to write %s: %v", files[i], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip writer: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFromReader_ZIP(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  Format
	}{
		{
			name:  "PPTX",
			files: []string{"[Content_Types].xml", "<Types/>", "ppt/presentation.xml", "<p:presentation/>"},
			want:  PPTX,
		},
		{
			name:  "PPTX without main part",
			files: []string{"[Content_Types].xml", "<Types/>", "ppt/slides/slide1.xml", "<p:sld/>"},
			want:  PPTX,
		},
		{
			name:  "DOCX",
			files: []string{"[Content_Types].xml", "<Types/>", "word/document.xml", "<w:document/>"},
			want:  DOCX,
		},
		{
			name:  "XLSX",
			files: []string{"[Content_Types].xml", "<Types/>", "xl/workbook.xml", "<workbook/>"},
			want:  XLSX,
		},
		{
			name:  "ODP",
			files: []string{"mimetype", "application/vnd.oasis.opendocument.presentation", "content.xml", "<office:document-content/>"},
			want:  ODP,
		},
		{
			name:  "ODT",
			files: []string{"mimetype", "application/vnd.oasis.opendocument.text", "content.xml", "<office:document-content/>"},
			want:  ODT,
		},
		{
			name:  "plain ZIP",
			files: []string{"readme.txt", "hello"},
			want:  Unknown,
		},
		{
			name:  "ppt folder without content types",
			files: []string{"ppt/presentation.xml", "<p:presentation/>"},
			want:  Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := zipBytes(t, tt.files...)
			got, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				t.Fatalf("DetectFromReader() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFromReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_CorruptZIP(t *testing.T) {
	data := append([]byte{0x50, 0x4B, 0x03, 0x04}, []byte("truncated")...)
	if _, err := DetectFromReader(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Error("DetectFromReader() expected error for corrupt ZIP")
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	// Content wins over a misleading extension
	path := filepath.Join(dir, "deck.pdf")
	data := zipBytes(t, "[Content_Types].xml", "<Types/>", "ppt/presentation.xml", "<p:presentation/>")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := DetectFile(path)
	if err != nil {
		t.Fatalf("DetectFile() error = %v", err)
	}
	if got != PPTX {
		t.Errorf("DetectFile() = %v, want PPTX", got)
	}

	if _, err := DetectFile(filepath.Join(dir, "missing.pptx")); err == nil {
		t.Error("DetectFile() expected error for missing file")
	}
}

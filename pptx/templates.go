package pptx

import (
	"embed"
	"fmt"
)

// Static parts shared by every generated presentation: the theme, the slide
// master, the two slide layouts and the presentation-level property parts.
//
//go:embed templates/*.xml
var templateFS embed.FS

// templatePart returns the bytes of an embedded template part.
func templatePart(name string) ([]byte, error) {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	return data, nil
}

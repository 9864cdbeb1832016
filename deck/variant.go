// Package deck holds the content of the GitHub workflow presentation and
// builds it into a model.Document.
//
// Two variants of the deck exist. They share the same twelve-slide outline
// and differ in wording, font sizes and the slide 5 table:
//
//	doc := deck.Build(deck.CommunicationFirst)
//	err := pptx.Save(deck.CommunicationFirst.FileName(), doc)
package deck

import (
	"fmt"
	"strings"
	"time"

	"github.com/tsawler/deckgen/model"
)

// Variant selects one version of the deck.
type Variant int

const (
	// CommunicationFirst emphasizes Phase 1, improving team communication.
	CommunicationFirst Variant = iota
	// Improved is the best-practices deck sized for content fitting.
	Improved
)

// SlideCount is the number of slides in every variant.
const SlideCount = 12

// DefaultAuthor is the presenter credited in the document properties.
const DefaultAuthor = "Amna & Hanzla"

// Creator is recorded as the application that produced the file.
const Creator = "deckgen"

// Fixed document timestamps keep repeated builds byte-identical
var (
	createdAt  = time.Date(2013, time.January, 27, 9, 14, 16, 0, time.UTC)
	modifiedAt = time.Date(2013, time.January, 27, 9, 15, 58, 0, time.UTC)
)

// Variants returns all variants in their canonical order.
func Variants() []Variant {
	return []Variant{CommunicationFirst, Improved}
}

func (v Variant) String() string {
	switch v {
	case CommunicationFirst:
		return "communication-first"
	case Improved:
		return "improved"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant returns the variant named s. "best-practices" is accepted as
// another name for Improved.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "communication-first", "communication":
		return CommunicationFirst, nil
	case "improved", "best-practices":
		return Improved, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (valid: communication-first, improved)", s)
	}
}

// FileName returns the fixed output file name of the variant.
func (v Variant) FileName() string {
	switch v {
	case Improved:
		return "GitHub_Workflow_Best_Practices_Improved.pptx"
	default:
		return "GitHub_Workflow_Communication_First.pptx"
	}
}

// Messages returns the confirmation lines printed after the file is saved.
func (v Variant) Messages() []string {
	switch v {
	case Improved:
		return []string{
			"✅ Improved PowerPoint presentation created successfully!",
			"📁 File saved as: " + v.FileName(),
			"🎯 Optimized for better visibility and content fitting",
		}
	default:
		return []string{
			"✅ Communication-focused PowerPoint created successfully!",
			"📁 File saved as: " + v.FileName(),
			"💬 Emphasizes Phase 1: Communication improvement",
			"🎯 Properly sized for full content visibility",
		}
	}
}

// Metadata returns the document properties of the variant.
func (v Variant) Metadata() model.Metadata {
	md := model.Metadata{
		Title:        "GitHub Developer Workflow",
		Author:       DefaultAuthor,
		Creator:      Creator,
		CreationDate: createdAt,
		ModDate:      modifiedAt,
	}
	switch v {
	case Improved:
		md.Subject = "From Chaos to Clarity: Two-Phase Transformation"
		md.Keywords = []string{"GitHub", "workflow", "best practices"}
	default:
		md.Subject = "Phase 1: Improve Team Communication & Standards"
		md.Keywords = []string{"GitHub", "workflow", "communication"}
	}
	return md
}

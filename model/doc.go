// Package model provides the in-memory representation of a presentation.
//
// A [Document] holds metadata, page dimensions and an ordered list of
// [Slide] values. Builders populate the tree; the pptx package serializes
// it and can read it back.
//
// # Document Structure
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "Quarterly Review"
//	slide := doc.AddSlide(model.LayoutTitle)
//	slide.Title = model.TextFrameFromText("Hello", model.Font{Size: 40, Bold: true})
//
// # Shapes
//
// Slides carry up to two placeholder text frames (Title and Body) plus any
// number of free-standing shapes implementing [Shape]:
//
//   - [TextBox] - positioned text frame
//   - [Table] - fixed grid of [Cell] values
//
// # Geometry
//
// All positions and sizes are in EMU (English Metric Units, 914400 per
// inch). Font sizes and paragraph spacing are in [Points].
package model

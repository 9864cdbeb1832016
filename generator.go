package deckgen

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/deckgen/deck"
	"github.com/tsawler/deckgen/fit"
	"github.com/tsawler/deckgen/model"
	"github.com/tsawler/deckgen/pptx"
)

// Generator provides a fluent interface for building and saving decks.
// Each configuration method returns a new Generator instance, making it
// safe for concurrent use and allowing method chaining.
type Generator struct {
	// Destinations
	out    io.Writer   // Confirmation lines
	logger *zap.Logger // Diagnostics

	// Configuration
	options GenerateOptions
}

// clone creates a shallow copy of the Generator with a copy of options.
func (g *Generator) clone() *Generator {
	return &Generator{
		out:     g.out,
		logger:  g.logger,
		options: g.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Generator instance)
// ============================================================================

// OutputDir sets the directory files are written to. The directory must
// exist.
//
// Example:
//
//	path, _, err := deckgen.New().OutputDir("build").Generate(ctx, deck.Improved)
func (g *Generator) OutputDir(dir string) *Generator {
	newGen := g.clone()
	newGen.options.outputDir = dir
	return newGen
}

// Author credits name in the document properties instead of the default
// presenters.
func (g *Generator) Author(name string) *Generator {
	newGen := g.clone()
	newGen.options.author = name
	return newGen
}

// CheckFit enables the text fit estimate. Findings are logged at warn
// level and returned as warnings.
func (g *Generator) CheckFit() *Generator {
	return g.FitCheck(true)
}

// FitCheck turns the text fit estimate on or off.
func (g *Generator) FitCheck(enabled bool) *Generator {
	newGen := g.clone()
	newGen.options.fitCheck = enabled
	return newGen
}

// Output sets where confirmation lines are printed. A nil writer discards
// them.
func (g *Generator) Output(w io.Writer) *Generator {
	newGen := g.clone()
	if w == nil {
		w = io.Discard
	}
	newGen.out = w
	return newGen
}

// Logger sets the logger. A nil logger disables logging.
func (g *Generator) Logger(logger *zap.Logger) *Generator {
	newGen := g.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newGen.logger = logger
	return newGen
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Document builds the document for a variant with the configured
// properties applied.
func (g *Generator) Document(v deck.Variant) *model.Document {
	doc := deck.Build(v)
	if g.options.author != "" {
		doc.Metadata.Author = g.options.author
	}
	return doc
}

// Path returns the file a variant is written to.
func (g *Generator) Path(v deck.Variant) string {
	return filepath.Join(g.options.outputDir, v.FileName())
}

// Generate builds a variant, saves it, overwriting any existing file, and
// prints the variant's confirmation lines. It returns the path written.
//
// Example:
//
//	path, warnings, err := deckgen.New().CheckFit().Generate(ctx, deck.CommunicationFirst)
func (g *Generator) Generate(ctx context.Context, v deck.Variant) (string, []Warning, error) {
	res, err := g.generate(ctx, v)
	if err != nil {
		return "", nil, err
	}
	if err := g.printMessages(v); err != nil {
		return res.path, res.warnings, err
	}
	return res.path, res.warnings, nil
}

// GenerateAll builds and saves several variants concurrently. Confirmation
// lines are printed once all variants are saved, one contiguous block per
// variant in the order given. Repeated variants are generated once, at their
// first position. With no variants, every variant is generated.
//
// When a variant fails the remaining ones are canceled, nothing is printed,
// and the first error is returned along with the paths that were saved.
func (g *Generator) GenerateAll(ctx context.Context, variants ...deck.Variant) ([]string, []Warning, error) {
	if len(variants) == 0 {
		variants = deck.Variants()
	}
	variants = unique(variants)

	results := make([]*result, len(variants))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, v := range variants {
		eg.Go(func() error {
			res, err := g.generate(egCtx, v)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	genErr := eg.Wait()

	var paths []string
	var warnings []Warning
	for _, res := range results {
		if res == nil {
			continue
		}
		paths = append(paths, res.path)
		warnings = append(warnings, res.warnings...)
	}
	if genErr != nil {
		return paths, warnings, genErr
	}

	for _, v := range variants {
		if err := g.printMessages(v); err != nil {
			return paths, warnings, err
		}
	}
	return paths, warnings, nil
}

// unique drops repeated variants, keeping the first occurrence.
func unique(variants []deck.Variant) []deck.Variant {
	seen := make(map[deck.Variant]bool, len(variants))
	out := make([]deck.Variant, 0, len(variants))
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// result is the outcome of saving one variant.
type result struct {
	path     string
	warnings []Warning
}

func (g *Generator) generate(ctx context.Context, v deck.Variant) (*result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("generating %s: %w", v, err)
	}

	log := g.logger.With(zap.Stringer("variant", v))
	log.Debug("building deck")
	doc := g.Document(v)

	path := g.Path(v)
	if err := pptx.Save(path, doc); err != nil {
		return nil, err
	}
	log.Info("presentation saved",
		zap.String("path", path),
		zap.Int("slides", doc.SlideCount()))

	res := &result{path: path}
	if g.options.fitCheck {
		res.warnings = fit.Check(doc)
		for _, w := range res.warnings {
			log.Warn("text may overflow its frame",
				zap.Int("slide", w.Slide),
				zap.String("shape", w.Shape),
				zap.Float64("needed_in", w.Needed.Inches()),
				zap.Float64("available_in", w.Available.Inches()))
		}
	}
	return res, nil
}

func (g *Generator) printMessages(v deck.Variant) error {
	for _, line := range v.Messages() {
		if _, err := fmt.Fprintln(g.out, line); err != nil {
			return fmt.Errorf("printing confirmation: %w", err)
		}
	}
	return nil
}

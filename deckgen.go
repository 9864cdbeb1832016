// Package deckgen provides a fluent API for building the GitHub workflow
// presentations and saving them as PPTX files.
//
// Basic usage:
//
//	path, warnings, err := deckgen.New().Generate(ctx, deck.CommunicationFirst)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", deckgen.FormatWarnings(warnings))
//	}
//
// With options:
//
//	paths, _, err := deckgen.New().
//	    OutputDir("build").
//	    Author("Platform Team").
//	    CheckFit().
//	    GenerateAll(ctx, deck.Variants()...)
//
// The deck content lives in the deck package; pptx holds the writer and
// reader used underneath.
package deckgen

import (
	"os"

	"go.uber.org/zap"

	"github.com/tsawler/deckgen/fit"
)

// Warning is an advisory finding from the fit check. It never fails a
// build.
type Warning = fit.Warning

// FormatWarnings renders warnings one per line.
func FormatWarnings(warnings []Warning) string {
	return fit.FormatWarnings(warnings)
}

// New returns a Generator that writes to the working directory, prints
// confirmation lines to standard output and does not log.
//
// Example:
//
//	path, _, err := deckgen.New().Generate(ctx, deck.Improved)
func New() *Generator {
	return &Generator{
		out:     os.Stdout,
		logger:  zap.NewNop(),
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := deckgen.Must(pptx.Open("GitHub_Workflow_Communication_First.pptx"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustGenerate is a helper that wraps a call to Generate or GenerateAll and
// panics if the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	path := deckgen.MustGenerate(deckgen.New().Generate(ctx, deck.Improved))
func MustGenerate[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

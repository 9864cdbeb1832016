package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/deckgen/fit"
	"github.com/tsawler/deckgen/format"
	"github.com/tsawler/deckgen/internal/printer"
	"github.com/tsawler/deckgen/pptx"
)

var (
	inspectMarkdown bool
	inspectNotes    bool
	inspectSlides   []int
	inspectFit      bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the text of a presentation",
	Long: `Print the text of a PPTX presentation, slide by slide.

Use --markdown for Markdown output with tables, --slide to select slides
(1-based, repeatable) and --fit to run the text fit estimate on the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectMarkdown, "markdown", false, "Render as Markdown")
	inspectCmd.Flags().BoolVar(&inspectNotes, "notes", false, "Include speaker notes")
	inspectCmd.Flags().IntSliceVar(&inspectSlides, "slide", nil, "Slide numbers to include (1-based)")
	inspectCmd.Flags().BoolVar(&inspectFit, "fit", false, "Report text that may overflow its frame")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := format.DetectFile(path)
	if err != nil {
		return printer.ErrorWithContext("Cannot read file", err.Error(), map[string]string{"file": path}, nil)
	}
	if f != format.PPTX {
		return printer.ErrorWithContext(
			"Not a PPTX presentation",
			fmt.Sprintf("Detected format: %s", f),
			map[string]string{"file": path},
			[]string{"Pass a file produced by 'deckgen build'"},
		)
	}

	r, err := pptx.Open(path)
	if err != nil {
		return printer.ErrorWithContext("Cannot open presentation", err.Error(), map[string]string{"file": path}, nil)
	}
	defer r.Close()
	logger.Debug("presentation opened", zap.String("path", path), zap.Int("slides", r.SlideCount()))

	opts := pptx.ExtractOptions{
		IncludeTitles: true,
		IncludeNotes:  inspectNotes,
	}
	for _, n := range inspectSlides {
		if n < 1 || n > r.SlideCount() {
			return printer.Error(
				"Slide out of range",
				fmt.Sprintf("Slide %d requested, presentation has %d", n, r.SlideCount()),
				nil,
			)
		}
		opts.SlideNumbers = append(opts.SlideNumbers, n-1)
	}

	var text string
	if inspectMarkdown {
		opts.IncludeMetadata = true
		text, err = r.MarkdownWithOptions(opts)
	} else {
		text, err = r.TextWithOptions(opts)
	}
	if err != nil {
		return fmt.Errorf("extracting text: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)

	if inspectFit {
		doc, err := r.Document()
		if err != nil {
			return fmt.Errorf("reading document: %w", err)
		}
		warnings := fit.Check(doc)
		for _, w := range warnings {
			printer.Warning("%s\n", w)
		}
		if len(warnings) == 0 {
			printer.Success("All text fits its frames\n")
		}
	}
	return nil
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/deckgen"
	"github.com/tsawler/deckgen/deck"
	"github.com/tsawler/deckgen/internal/printer"
)

var (
	outputDir  string
	noFitCheck bool
)

var buildCmd = &cobra.Command{
	Use:   "build [variant...]",
	Short: "Build presentations",
	Long: `Build one or more presentation variants and save them as PPTX files.

Without arguments the variants listed in the config file are built, which
defaults to all of them. Existing files are overwritten.

Examples:
  deckgen build
  deckgen build improved --out build/
  deckgen build communication-first --no-fit-check`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (overrides output_dir)")
	buildCmd.Flags().BoolVar(&noFitCheck, "no-fit-check", false, "Skip the text fit estimate")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	variants, err := buildVariants(args)
	if err != nil {
		return printer.Error(
			"Unknown variant",
			err.Error(),
			[]string{"Run 'deckgen variants' to list the available variants"},
		)
	}

	dir := cfg.OutputDir
	if outputDir != "" {
		dir = outputDir
	}

	gen := deckgen.New().
		OutputDir(dir).
		Author(cfg.Author).
		FitCheck(cfg.FitCheck && !noFitCheck).
		Output(cmd.OutOrStdout()).
		Logger(logger)

	paths, warnings, err := gen.GenerateAll(cmd.Context(), variants...)
	if err != nil {
		return printer.ErrorWithContext(
			"Build failed",
			err.Error(),
			map[string]string{"output_dir": dir},
			[]string{"Check that the output directory exists and is writable"},
		)
	}

	for _, w := range warnings {
		printer.Warning("%s\n", w)
	}
	printer.Success("Built %d presentation(s)\n", len(paths))
	return nil
}

// buildVariants resolves command-line variants, falling back to the config.
func buildVariants(args []string) ([]deck.Variant, error) {
	if len(args) == 0 {
		return cfg.ParsedVariants()
	}
	variants := make([]deck.Variant, 0, len(args))
	for _, arg := range args {
		v, err := deck.ParseVariant(arg)
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

package deckgen

// GenerateOptions holds configuration for deck generation.
type GenerateOptions struct {
	// Output
	outputDir string // Directory the file is written to ("" = working directory)

	// Document properties
	author string // Overrides the default presenter credit when set

	// Processing options
	fitCheck bool // Estimate text overflow after building
}

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		outputDir: "",
		author:    "",
		fitCheck:  false,
	}
}

// clone creates a copy of GenerateOptions.
func (o GenerateOptions) clone() GenerateOptions {
	return GenerateOptions{
		outputDir: o.outputDir,
		author:    o.author,
		fitCheck:  o.fitCheck,
	}
}

// Package config provides the deckgen CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/deckgen/deck"
)

// DefaultPath is the config file the CLI reads when --config is not given.
const DefaultPath = "deckgen.yaml"

// Config holds all deckgen configuration.
type Config struct {
	// Directory the presentations are written to
	OutputDir string `yaml:"output_dir"`

	// Variants built when none are named on the command line
	Variants []string `yaml:"variants"`

	// Author recorded in the document properties; empty keeps the presenters
	Author string `yaml:"author"`

	// Estimate whether text fits its frames and log findings
	FitCheck bool `yaml:"fit_check"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted logging encodings.
var ValidFormats = []string{"json", "console"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	variants := make([]string, 0, len(deck.Variants()))
	for _, v := range deck.Variants() {
		variants = append(variants, v.String())
	}
	return &Config{
		OutputDir: ".",
		Variants:  variants,
		FitCheck:  true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("DECKGEN_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
	if level := os.Getenv("DECKGEN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// ParsedVariants returns the configured variants in order.
func (c *Config) ParsedVariants() ([]deck.Variant, error) {
	out := make([]deck.Variant, 0, len(c.Variants))
	for _, name := range c.Variants {
		v, err := deck.ParseVariant(name)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if _, err := c.ParsedVariants(); err != nil {
		return fmt.Errorf("invalid variants: %w", err)
	}
	if !contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

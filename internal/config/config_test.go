package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/deckgen/deck"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.OutputDir != "." {
		t.Errorf("expected OutputDir=., got %s", cfg.OutputDir)
	}
	if len(cfg.Variants) != 2 || cfg.Variants[0] != "communication-first" || cfg.Variants[1] != "improved" {
		t.Errorf("unexpected Variants: %v", cfg.Variants)
	}
	if !cfg.FitCheck {
		t.Error("expected FitCheck=true")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("unexpected Logging: %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("DECKGEN_OUTPUT_DIR", "")
	t.Setenv("DECKGEN_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "." || len(cfg.Variants) != 2 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	t.Setenv("DECKGEN_OUTPUT_DIR", "")
	t.Setenv("DECKGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "deckgen.yaml")
	data := "variants: [improved]\nauthor: Platform Team\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Variants) != 1 || cfg.Variants[0] != "improved" {
		t.Errorf("expected Variants=[improved], got %v", cfg.Variants)
	}
	if cfg.Author != "Platform Team" {
		t.Errorf("expected Author=Platform Team, got %s", cfg.Author)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
	// Unset keys keep their defaults
	if cfg.Logging.Format != "console" || cfg.OutputDir != "." || !cfg.FitCheck {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deckgen.yaml")
	if err := os.WriteFile(path, []byte("variants: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("DECKGEN_OUTPUT_DIR", "")
	t.Setenv("DECKGEN_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "nested", "deckgen.yaml")

	cfg := DefaultConfig()
	cfg.OutputDir = "build"
	cfg.FitCheck = false
	cfg.Logging.Format = "json"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "build" {
		t.Errorf("expected OutputDir=build, got %s", loaded.OutputDir)
	}
	if loaded.FitCheck {
		t.Error("expected FitCheck=false")
	}
	if loaded.Logging.Format != "json" {
		t.Errorf("expected Format=json, got %s", loaded.Logging.Format)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DECKGEN_OUTPUT_DIR", "/tmp/decks")
	t.Setenv("DECKGEN_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OutputDir != "/tmp/decks" {
		t.Errorf("expected OutputDir from env, got %s", cfg.OutputDir)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected Level from env, got %s", cfg.Logging.Level)
	}
}

func TestConfig_ParsedVariants(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variants = []string{"improved", "Communication-First"}

	got, err := cfg.ParsedVariants()
	if err != nil {
		t.Fatalf("ParsedVariants failed: %v", err)
	}
	if len(got) != 2 || got[0] != deck.Improved || got[1] != deck.CommunicationFirst {
		t.Errorf("unexpected variants: %v", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty output dir", func(c *Config) { c.OutputDir = " " }, "output_dir"},
		{"unknown variant", func(c *Config) { c.Variants = []string{"keynote"} }, "invalid variants"},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, "invalid logging level"},
		{"bad format", func(c *Config) { c.Logging.Format = "text" }, "invalid logging format"},
		{"no variants", func(c *Config) { c.Variants = nil }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

// Package config handles configuration loading and validation for gridmark.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
	Format FormatConfig `yaml:"format"`
	Theme  string       `yaml:"theme"`
}

// EditorConfig holds grid-editor behavior settings.
type EditorConfig struct {
	// DebounceMS delays write-backs so rapid keystrokes produce one
	// document edit, not one per keystroke.
	DebounceMS int `yaml:"debounce_ms"`
	// DefaultColumnWidth is the width unit assigned to new columns.
	DefaultColumnWidth int `yaml:"default_column_width"`
	// RowIndexMode starts sessions with the derived row-number column on.
	RowIndexMode bool `yaml:"row_index_mode"`
}

// FormatConfig holds settings for the fmt command.
type FormatConfig struct {
	// Patterns are the doublestar globs fmt uses when none are given.
	Patterns []string `yaml:"patterns"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Editor: EditorConfig{
			DebounceMS:         300,
			DefaultColumnWidth: 150,
		},
		Format: FormatConfig{
			Patterns: []string{"**/*.md"},
		},
		Theme: "tokyo-night",
	}
}

// Load reads configuration from the given path. If configPath is empty or
// doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Editor.DebounceMS == 0 {
		c.Editor.DebounceMS = defaults.Editor.DebounceMS
	}
	if c.Editor.DefaultColumnWidth == 0 {
		c.Editor.DefaultColumnWidth = defaults.Editor.DefaultColumnWidth
	}
	if len(c.Format.Patterns) == 0 {
		c.Format.Patterns = defaults.Format.Patterns
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

package config

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
)

// Validate performs structural validation of the configuration.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("editor.debounce_ms", c.Editor.DebounceMS, nonNegative),
		criterio.Run("editor.default_column_width", c.Editor.DefaultColumnWidth, positive),
		c.validatePatterns(),
	)
}

func (c *Config) validatePatterns() error {
	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Format.Patterns {
		if !doublestar.ValidatePattern(p) {
			errs = errs.Append(fmt.Sprintf("format.patterns[%d]", i), fmt.Errorf("invalid glob pattern: %s", p))
		}
	}
	return errs.ToError()
}

func nonNegative(v int) error {
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func positive(v int) error {
	if v <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// Package logging provides component-scoped zerolog loggers.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Document creates a component logger that also carries the document path,
// for code paths that fan out per open document.
func Document(name, path string) zerolog.Logger {
	return Component(name).With().Str("doc", path).Logger()
}

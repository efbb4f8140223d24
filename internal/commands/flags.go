// Package commands wires the CLI surface of gridmark.
package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gridmark/gridmark/internal/core/config"
	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/editor"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Bus carries grid and document events between components
	Bus *eventbus.EventBus

	// Editor owns open table sessions and their write-back
	Editor *editor.Service
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gridmark", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/gridmark/gridmark.log
// On Linux: $XDG_STATE_HOME/gridmark/gridmark.log (defaults to ~/.local/state/gridmark/gridmark.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "gridmark", "gridmark.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "gridmark", "gridmark.log")
	}

	return filepath.Join(home, ".local", "state", "gridmark", "gridmark.log")
}

// Package notify defines the user-facing notification severities shared
// between the event bus and the TUI status line.
package notify

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

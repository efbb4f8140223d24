// Package document abstracts the host text buffer a table lives in. The core
// never touches files directly; it goes through a Provider so the edit engine
// stays independent of where the text is stored.
package document

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidRange is returned when a line range no longer exists in the
// document.
var ErrInvalidRange = errors.New("line range is no longer valid")

// Provider exposes the document operations the core needs. Only provider
// failures propagate as errors; everything above this layer treats bad input
// shape as a no-op.
type Provider interface {
	// Path identifies the document, used as the session registry key.
	Path() string
	// Text returns the full document text.
	Text() (string, error)
	// LineText returns the text of a single line without its newline.
	LineText(line int) (string, error)
	// ReplaceRange replaces the inclusive line range [start, end] with text.
	// A trailing newline on text is not required; lines are re-joined with
	// "\n".
	ReplaceRange(start, end int, text string) error
}

// File is a Provider backed by a file on disk.
type File struct {
	path string
}

// NewFile creates a file-backed document provider.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Text reads the whole file.
func (f *File) Text() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

// LineText returns one line of the file.
func (f *File) LineText(line int) (string, error) {
	text, err := f.Text()
	if err != nil {
		return "", err
	}
	lines := SplitLines(text)
	if line < 0 || line >= len(lines) {
		return "", fmt.Errorf("line %d: %w", line, ErrInvalidRange)
	}
	return lines[line], nil
}

// ReplaceRange splices text over the inclusive line range [start, end] and
// writes the file back.
func (f *File) ReplaceRange(start, end int, text string) error {
	current, err := f.Text()
	if err != nil {
		return err
	}
	lines := SplitLines(current)
	if start < 0 || end < start || end >= len(lines) {
		return fmt.Errorf("lines %d-%d: %w", start, end, ErrInvalidRange)
	}

	replacement := SplitLines(strings.TrimRight(text, "\n"))

	out := make([]string, 0, len(lines)-(end-start+1)+len(replacement))
	out = append(out, lines[:start]...)
	out = append(out, replacement...)
	out = append(out, lines[end+1:]...)

	joined := strings.Join(out, "\n")
	if strings.HasSuffix(current, "\n") && !strings.HasSuffix(joined, "\n") {
		joined += "\n"
	}

	if err := os.WriteFile(f.path, []byte(joined), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// SplitLines splits document text on any newline style. A trailing newline
// does not produce a phantom empty last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

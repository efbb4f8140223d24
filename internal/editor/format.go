package editor

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gridmark/gridmark/internal/core/document"
	"github.com/gridmark/gridmark/internal/core/table"
)

// FormatFile normalizes every table in the file at path (decode then encode)
// and reports how many tables were rewritten. Structured content is
// preserved; spacing and alignment markers are normalized.
func FormatFile(path string) (int, error) {
	doc := document.NewFile(path)
	text, err := doc.Text()
	if err != nil {
		return 0, err
	}

	spans := table.FindAll(text)
	if len(spans) == 0 {
		return 0, nil
	}

	// Rewrite bottom-up so earlier span line indices stay valid.
	changed := 0
	for i := len(spans) - 1; i >= 0; i-- {
		span := spans[i]
		normalized := table.Encode(table.Decode(span.Text))
		if strings.TrimRight(normalized, "\n") == span.Text {
			continue
		}
		if err := doc.ReplaceRange(span.StartLine, span.EndLine, normalized); err != nil {
			return changed, fmt.Errorf("rewrite table at line %d: %w", span.StartLine, err)
		}
		changed++
	}
	return changed, nil
}

// CountUnformatted reports how many tables in the file FormatFile would
// rewrite, without touching the file.
func CountUnformatted(path string) (int, error) {
	doc := document.NewFile(path)
	text, err := doc.Text()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, span := range table.FindAll(text) {
		normalized := table.Encode(table.Decode(span.Text))
		if strings.TrimRight(normalized, "\n") != span.Text {
			count++
		}
	}
	return count, nil
}

// Glob resolves doublestar patterns relative to root into a sorted,
// deduplicated list of file paths.
func Glob(root string, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	fsys := os.DirFS(root)

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			full := filepath.Join(root, filepath.FromSlash(m))
			info, err := fs.Stat(fsys, m)
			if err != nil || info.IsDir() {
				continue
			}
			seen[full] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// ListTables describes every table in the document at path.
func ListTables(path string) ([]TableInfo, error) {
	doc := document.NewFile(path)
	text, err := doc.Text()
	if err != nil {
		return nil, err
	}

	var infos []TableInfo
	for _, span := range table.FindAll(text) {
		g := table.Decode(span.Text)
		info := TableInfo{
			Span:    span,
			Rows:    g.Rows(),
			Columns: g.Cols(),
		}
		if !g.IsEmpty() {
			info.Header = append([]string(nil), g[0]...)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// TableInfo summarizes one table found in a document.
type TableInfo struct {
	Span    table.Span
	Rows    int // grid rows: header + data rows
	Columns int
	Header  []string
}

package table

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// separatorCell matches one cell of a Markdown alignment-separator row,
// e.g. "---", ":--", "--:", ":-:".
var separatorCell = regexp.MustCompile(`^:?-+:?$`)

// minColumnWidth is the floor for encoded column widths; a narrower column
// could not hold the "---" separator.
const minColumnWidth = 3

// Decode parses raw pipe-table text into a Grid. Text with fewer than two
// lines yields an empty grid, which callers must treat as "not a table".
// The alignment-separator line after the header is structural and is removed.
//
// A line without any pipe still produces a single-cell row; the locator is
// responsible for excluding non-table lines before text reaches the codec.
func Decode(text string) Grid {
	lines := splitLines(strings.TrimRight(text, "\r\n"))
	if len(lines) < 2 {
		return Grid{}
	}

	grid := make(Grid, 0, len(lines))
	for _, line := range lines {
		grid = append(grid, decodeRow(line))
	}

	if len(grid) > 1 && isSeparatorRow(grid[1]) {
		grid = append(grid[:1], grid[2:]...)
	}

	return grid.Normalize()
}

func decodeRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	parts := strings.Split(trimmed, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	if strings.HasPrefix(trimmed, "|") && len(parts) > 0 {
		parts = parts[1:]
	}
	if strings.HasSuffix(trimmed, "|") && len(parts) > 0 {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func isSeparatorRow(row []string) bool {
	for _, cell := range row {
		if !separatorCell.MatchString(cell) {
			return false
		}
	}
	return len(row) > 0
}

// Encode renders a grid back to pipe-table text: a header row, a separator
// row, then the data rows, each newline-terminated. Cells are left-aligned
// and padded to the column's widest cell. Original alignment markers and
// spacing are not preserved; only structured content round-trips.
func Encode(grid Grid) string {
	if grid.IsEmpty() {
		return ""
	}

	widths := make([]int, grid.Cols())
	for _, row := range grid {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if n := utf8.RuneCountInString(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i, w := range widths {
		if w < minColumnWidth {
			widths[i] = minColumnWidth
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", w-utf8.RuneCountInString(cell)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(grid[0])

	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("-", w))
		b.WriteString(" |")
	}
	b.WriteString("\n")

	for _, row := range grid[1:] {
		writeRow(row)
	}

	return b.String()
}

// splitLines splits on any newline style.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

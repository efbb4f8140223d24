package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/notify"
)

const (
	minCellChars = 3
	maxCellChars = 40
)

// View renders the editor for the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateHelp:
		return m.viewHelp()
	case statePreview:
		return m.viewPreview()
	}

	var b strings.Builder
	b.WriteString(m.viewTitle())
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.HelpText.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) viewTitle() string {
	title := m.styles.Title.Render("gridmark")
	path := m.styles.StatusBar.Render(m.handle.Doc.Path())
	return title + "  " + path
}

func (m Model) viewGrid() string {
	rows := m.snapshot.Grid.Rows()
	cols := m.snapshot.Grid.Cols()
	if rows == 0 || cols == 0 {
		return m.styles.StatusBar.Render("(empty table)")
	}

	widths := make([]int, cols)
	for c := range widths {
		widths[c] = m.columnChars(c)
	}

	var b strings.Builder
	end := rows
	if visible := m.visibleRows(); visible > 0 && m.rowOffset+visible < rows {
		end = m.rowOffset + visible
	}

	for r := m.rowOffset; r < end; r++ {
		cells := make([]string, cols)
		for c := 0; c < cols; c++ {
			cells[c] = m.renderCell(r, c, widths[c])
		}
		b.WriteString(strings.Join(cells, m.styles.Divider.Render(" │ ")))
		b.WriteString("\n")
		if r == 0 {
			b.WriteString(m.viewHeaderRule(widths))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// viewHeaderRule draws the separator under the header row.
func (m Model) viewHeaderRule(widths []int) string {
	segs := make([]string, len(widths))
	for i, w := range widths {
		segs[i] = strings.Repeat("─", w)
	}
	return m.styles.Divider.Render(strings.Join(segs, "─┼─"))
}

func (m Model) renderCell(row, col, width int) string {
	ref := grid.CellRef{Row: row, Col: col}
	text := cellLabel(m.snapshot.Grid[row][col])

	style := m.styles.Cell
	switch {
	case ref == m.cursor && m.state == stateEditing:
		return m.styles.EditCursor.Width(width).MaxWidth(width).Render(m.input.View())
	case ref == m.cursor:
		style = m.styles.Cursor
	case row == 0:
		style = m.styles.Header
	case m.snapshot.RowIndexMode && col == 0:
		style = m.styles.IndexCell
	}
	return style.Width(width).MaxWidth(width).Render(text)
}

// cellLabel flattens stored cell text to a single display line.
func cellLabel(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + "…"
	}
	return s
}

// columnChars converts a column's width units to terminal characters.
func (m Model) columnChars(col int) int {
	units := grid.DefaultColumnWidth
	if col < len(m.snapshot.ColumnWidths) {
		units = m.snapshot.ColumnWidths[col]
	}
	chars := units / 10
	if chars < minCellChars {
		chars = minCellChars
	}
	if chars > maxCellChars {
		chars = maxCellChars
	}
	return chars
}

// visibleRows is how many grid rows fit in the current terminal height,
// leaving room for the title, header rule, status line, and help.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	v := m.height - 7
	if v < 1 {
		v = 1
	}
	return v
}

func (m Model) viewStatus() string {
	cell := fmt.Sprintf("r%d c%d", m.cursor.Row+1, m.cursor.Col+1)
	dims := fmt.Sprintf("%dx%d", m.snapshot.Grid.Rows(), m.snapshot.Grid.Cols())

	parts := []string{m.styles.StatusBar.Render(cell + "  " + dims)}
	if m.snapshot.RowIndexMode {
		parts = append(parts, m.styles.StatusBar.Render("[#]"))
	}
	if m.status != "" {
		style := m.styles.StatusInfo
		switch m.statusLevel {
		case notify.LevelWarning:
			style = m.styles.StatusWarn
		case notify.LevelError:
			style = m.styles.StatusErr
		}
		parts = append(parts, style.Render(m.status))
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("gridmark keys"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatusBar.Render("press esc to return"))
	return b.String()
}

func (m Model) viewPreview() string {
	title := m.styles.Title.Render("preview")
	hint := m.styles.StatusBar.Render("esc to return")
	return lipgloss.JoinVertical(lipgloss.Left, title+"  "+hint, m.preview.View())
}

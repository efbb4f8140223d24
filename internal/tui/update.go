package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/gridmark/gridmark/internal/core/grid"
	"github.com/gridmark/gridmark/internal/core/notify"
	"github.com/gridmark/gridmark/internal/core/table"
)

// resizeStep is the width-unit change for one narrow/widen keypress.
const resizeStep = 10

// Update handles messages for the grid editor.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case gridChangedMsg:
		m.snapshot = msg.snapshot
		m.clampCursor()
		return m, waitEvent(m.events)

	case syncedMsg:
		m.setStatus(notify.LevelInfo, "table written")
		return m, waitEvent(m.events)

	case notificationMsg:
		m.setStatus(msg.level, msg.message)
		return m, waitEvent(m.events)

	case tea.KeyMsg:
		switch m.state {
		case stateEditing:
			return m.updateEditing(msg)
		case stateHelp:
			return m.updateHelp(msg)
		case statePreview:
			return m.updatePreview(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.state = stateHelp
		m.help.ShowAll = true
		return m, nil

	case key.Matches(msg, m.keys.Move):
		m.moveCursor(msg.String())
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()

	case key.Matches(msg, m.keys.AddRow):
		m.session().InsertRow(1)
		m.setStatus(notify.LevelInfo, "row added")
		return m, nil

	case key.Matches(msg, m.keys.AddColumn):
		m.session().InsertColumn(1)
		m.setStatus(notify.LevelInfo, "column added")
		return m, nil

	case key.Matches(msg, m.keys.DeleteRow):
		m.session().RemoveRow(m.cursor.Row)
		return m, nil

	case key.Matches(msg, m.keys.DeleteColumn):
		m.session().RemoveColumn(m.cursor.Col)
		return m, nil

	case key.Matches(msg, m.keys.Duplicate):
		m.session().DuplicateRow(m.cursor.Row)
		return m, nil

	case key.Matches(msg, m.keys.RowIndex):
		m.session().SetRowIndexMode(!m.snapshot.RowIndexMode)
		return m, nil

	case key.Matches(msg, m.keys.Narrow):
		m.resizeColumn(-resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.Widen):
		m.resizeColumn(resizeStep)
		return m, nil

	case key.Matches(msg, m.keys.AutoFit):
		m.session().AutoFitColumn(m.cursor.Col)
		return m, nil

	case key.Matches(msg, m.keys.Write):
		m.handle.Syncer.Flush()
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		return m.openPreview()
	}

	// Everything else may be a grid navigation combo (shift+alt+down).
	if m.session().ApplyKey(parseCombo(msg.String())) {
		m.syncCursorFromSession()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	combo := parseCombo(msg.String())

	if combo.Key == "esc" {
		m.state = stateNormal
		m.input.Blur()
		return m, nil
	}

	if combo.Key == "enter" || combo.Key == "down" {
		action := m.session().ResolveKey(combo, m.cursor)
		switch action.Kind {
		case grid.ActionLineBreak:
			m.input.SetValue(m.input.Value() + "\n")
			return m, nil
		case grid.ActionNone:
			if combo.Key != "enter" {
				break
			}
			// Last cell: commit and stop editing.
			m.commitEdit()
			m.state = stateNormal
			m.input.Blur()
			return m, nil
		default:
			m.commitEdit()
			m.session().ApplyKey(combo)
			m.syncCursorFromSession()
			m.state = stateNormal
			m.input.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.state = stateNormal
		m.help.ShowAll = false
	}
	return m, nil
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "p":
		m.state = stateNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	if m.snapshot.RowIndexMode && m.cursor.Col == 0 && m.cursor.Row >= 1 {
		m.setStatus(notify.LevelWarning, "row numbers are derived, edit another column")
		return m, nil
	}
	m.state = stateEditing
	m.input.SetValue(m.session().CellText(m.cursor.Row, m.cursor.Col))
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// commitEdit writes the input buffer into the active cell.
func (m *Model) commitEdit() {
	m.session().SetCell(m.cursor.Row, m.cursor.Col, m.input.Value())
}

func (m Model) openPreview() (tea.Model, tea.Cmd) {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	height := m.height - 4
	if height < 5 {
		height = 5
	}

	markdown := table.Encode(m.snapshot.Grid)
	content := markdown

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.log.Debug().Err(err).Msg("markdown renderer unavailable, showing raw table")
	} else if rendered, err := renderer.Render(markdown); err != nil {
		m.log.Debug().Err(err).Msg("markdown render failed, showing raw table")
	} else {
		content = strings.TrimSpace(rendered)
	}

	m.preview = viewport.New(width, height)
	m.preview.SetContent(content)
	m.state = statePreview
	return m, nil
}

func (m *Model) moveCursor(keyName string) {
	row, col := m.cursor.Row, m.cursor.Col
	switch keyName {
	case "up", "k":
		row--
	case "down", "j":
		row++
	case "left", "h":
		col--
	case "right", "l":
		col++
	}

	rows, cols := m.snapshot.Grid.Rows(), m.snapshot.Grid.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return
	}

	m.cursor = grid.CellRef{Row: row, Col: col}
	m.session().Focus(row, col)
	m.scrollToCursor()
}

func (m *Model) resizeColumn(delta int) {
	widths := m.snapshot.ColumnWidths
	if m.cursor.Col >= len(widths) {
		return
	}
	width := widths[m.cursor.Col] + delta
	if width < 30 {
		width = 30
	}
	m.session().ResizeColumn(m.cursor.Col, width)
}

// syncCursorFromSession pulls the cursor back from the session's active cell
// after a navigation action moved it.
func (m *Model) syncCursorFromSession() {
	if cell, ok := m.session().ActiveCell(); ok {
		m.cursor = cell
		m.scrollToCursor()
	}
}

func (m *Model) clampCursor() {
	rows, cols := m.snapshot.Grid.Rows(), m.snapshot.Grid.Cols()
	if rows == 0 || cols == 0 {
		m.cursor = grid.CellRef{}
		return
	}
	if m.cursor.Row >= rows {
		m.cursor.Row = rows - 1
	}
	if m.cursor.Col >= cols {
		m.cursor.Col = cols - 1
	}
}

func (m *Model) scrollToCursor() {
	visible := m.visibleRows()
	if visible <= 0 {
		return
	}
	if m.cursor.Row < m.rowOffset {
		m.rowOffset = m.cursor.Row
	}
	if m.cursor.Row >= m.rowOffset+visible {
		m.rowOffset = m.cursor.Row - visible + 1
	}
}

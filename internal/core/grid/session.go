// Package grid implements the stateful table edit engine: the current grid,
// the active-cell anchor, column widths, row-index mode, and the mutation
// operations a structured editor applies. It contains pure data logic with no
// Bubble Tea dependencies; the presentation layer re-renders from emitted
// snapshots.
package grid

import (
	"strconv"
	"sync"

	"github.com/gridmark/gridmark/internal/core/table"
)

// DefaultColumnWidth is the width, in presentation units, assigned to a
// column that has never been sized explicitly.
const DefaultColumnWidth = 150

// CellRef identifies a grid cell by row and column index.
type CellRef struct {
	Row int
	Col int
}

// Snapshot is an immutable view of session state emitted after mutations.
type Snapshot struct {
	Grid         table.Grid
	ActiveCell   *CellRef
	ColumnWidths []int
	RowIndexMode bool
}

// Options configures a new session.
type Options struct {
	DefaultColumnWidth int
	RowIndexMode       bool

	// OnChange is invoked with a fresh snapshot after every state change.
	OnChange func(Snapshot)
}

// Session is the table edit engine. Mutations keep the grid rectangular and
// never fail on user-input shape; an operation that would violate an
// invariant (removing the last row, editing the derived index column) is a
// no-op instead of an error.
//
// A session is safe for concurrent use: the presentation goroutine mutates
// it while the debounced write-back and the bus dispatch goroutine read and
// reconcile it. OnChange runs under the session lock and must not call back
// into the session.
type Session struct {
	mu           sync.Mutex
	grid         table.Grid
	active       *CellRef
	colWidths    []int
	rowIndexMode bool
	defaultWidth int
	onChange     func(Snapshot)
}

// NewSession creates a session seeded from g. An empty grid is replaced by
// the default 2x2 empty grid.
func NewSession(g table.Grid, opts Options) *Session {
	if g.IsEmpty() {
		g = table.NewEmptyGrid()
	}
	width := opts.DefaultColumnWidth
	if width <= 0 {
		width = DefaultColumnWidth
	}

	s := &Session{
		grid:         g.Clone().Normalize(),
		rowIndexMode: opts.RowIndexMode,
		defaultWidth: width,
		onChange:     opts.OnChange,
	}
	s.colWidths = make([]int, s.grid.Cols())
	for i := range s.colWidths {
		s.colWidths[i] = width
	}
	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	return s
}

// Snapshot returns an independent copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	snap := Snapshot{
		Grid:         s.grid.Clone(),
		ColumnWidths: append([]int(nil), s.colWidths...),
		RowIndexMode: s.rowIndexMode,
	}
	if s.active != nil {
		c := *s.active
		snap.ActiveCell = &c
	}
	return snap
}

// Grid returns a copy of the current grid.
func (s *Session) Grid() table.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Clone()
}

// RowCount returns the number of rows, including the header.
func (s *Session) RowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Rows()
}

// ColCount returns the number of columns.
func (s *Session) ColCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.Cols()
}

// ColumnWidths returns a copy of the per-column width entries.
func (s *Session) ColumnWidths() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.colWidths...)
}

// RowIndexMode reports whether the derived row-number column is enabled.
func (s *Session) RowIndexMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rowIndexMode
}

// ActiveCell returns the last-focused cell, if any.
func (s *Session) ActiveCell() (CellRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCell()
}

func (s *Session) activeCell() (CellRef, bool) {
	if s.active == nil {
		return CellRef{}, false
	}
	return *s.active, true
}

// Focus records the active cell. The presentation layer must call this on
// every focus transition; it anchors the next insert operation.
func (s *Session) Focus(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus(row, col)
}

func (s *Session) focus(row, col int) {
	if row < 0 || row >= s.grid.Rows() || col < 0 || col >= s.grid.Cols() {
		return
	}
	if s.active != nil && s.active.Row == row && s.active.Col == col {
		return
	}
	s.active = &CellRef{Row: row, Col: col}
	s.emit()
}

// SetCell replaces a cell's stored text. The value is display text; literal
// line breaks are substituted with the break token before storage. Editing
// the derived index column while row-index mode is on is a silent no-op.
func (s *Session) SetCell(row, col int, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= s.grid.Rows() || col < 0 || col >= s.grid.Cols() {
		return
	}
	if s.rowIndexMode && col == 0 && row >= 1 {
		return
	}
	stored := table.EncodeCellText(value)
	if s.grid[row][col] == stored {
		return
	}
	s.grid[row][col] = stored
	s.emit()
}

// CellText returns a cell's display text with break tokens restored.
func (s *Session) CellText(row, col int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if row < 0 || row >= s.grid.Rows() || col < 0 || col >= s.grid.Cols() {
		return ""
	}
	return table.DecodeCellText(s.grid[row][col])
}

// InsertRow inserts an empty row at activeCell.row+offset, clamped into
// [0, rowCount]. Without an active cell the row is appended.
func (s *Session) InsertRow(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertRow(offset)
}

func (s *Session) insertRow(offset int) {
	idx := s.grid.Rows()
	if s.active != nil {
		idx = clamp(s.active.Row+offset, 0, s.grid.Rows())
	}

	row := make([]string, s.grid.Cols())
	s.grid = append(s.grid, nil)
	copy(s.grid[idx+1:], s.grid[idx:])
	s.grid[idx] = row

	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	s.emit()
}

// InsertColumn inserts an empty column at activeCell.col+offset, clamped into
// [0, columnCount], together with a matching width entry. Without an active
// cell the column is appended. With row-index mode on, the derived numbers
// are recomputed so they stay in column 0.
func (s *Session) InsertColumn(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.grid.Cols()
	if s.active != nil {
		idx = clamp(s.active.Col+offset, 0, s.grid.Cols())
	}

	for i, row := range s.grid {
		row = append(row, "")
		copy(row[idx+1:], row[idx:])
		row[idx] = ""
		s.grid[i] = row
	}

	s.colWidths = append(s.colWidths, 0)
	copy(s.colWidths[idx+1:], s.colWidths[idx:])
	s.colWidths[idx] = s.defaultWidth

	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	s.emit()
}

// RemoveRow deletes the row at index. Removing the last remaining row,
// including a bare header, is a no-op.
func (s *Session) RemoveRow(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid.Rows() <= 1 || index < 0 || index >= s.grid.Rows() {
		return
	}
	s.grid = append(s.grid[:index], s.grid[index+1:]...)
	s.clampActive()
	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	s.emit()
}

// RemoveColumn deletes column index from every row and its width entry.
// Removing the last remaining column is a no-op. With row-index mode on, the
// derived numbers are recomputed; a data column promoted into position 0
// becomes the index column and its old content is overwritten.
func (s *Session) RemoveColumn(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.grid.Cols() <= 1 || index < 0 || index >= s.grid.Cols() {
		return
	}
	for i, row := range s.grid {
		s.grid[i] = append(row[:index], row[index+1:]...)
	}
	s.colWidths = append(s.colWidths[:index], s.colWidths[index+1:]...)
	s.clampActive()
	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	s.emit()
}

// DuplicateRow inserts a copy of row index immediately after it.
func (s *Session) DuplicateRow(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.duplicateRow(index)
}

func (s *Session) duplicateRow(index int) {
	if index < 0 || index >= s.grid.Rows() {
		return
	}
	dup := append([]string(nil), s.grid[index]...)
	s.grid = append(s.grid, nil)
	copy(s.grid[index+2:], s.grid[index+1:])
	s.grid[index+1] = dup

	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	s.emit()
}

// SetRowIndexMode toggles the derived row-number column. Enabling it
// recomputes column 0 of every data row to its 1-based number; the header is
// left untouched. Idempotent: re-enabling with correct numbering emits
// nothing.
func (s *Session) SetRowIndexMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.rowIndexMode != enabled
	s.rowIndexMode = enabled
	if enabled && s.recomputeRowNumbers() {
		changed = true
	}
	if changed {
		s.emit()
	}
}

// ResizeColumn sets the width entry for a column.
func (s *Session) ResizeColumn(index, width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resizeColumn(index, width)
}

func (s *Session) resizeColumn(index, width int) {
	if index < 0 || index >= len(s.colWidths) || width <= 0 {
		return
	}
	if s.colWidths[index] == width {
		return
	}
	s.colWidths[index] = width
	s.emit()
}

// AutoFitColumn derives a column's width entry from its longest cell.
func (s *Session) AutoFitColumn(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= s.grid.Cols() {
		return
	}
	longest := 0
	for _, row := range s.grid {
		if n := len([]rune(row[index])); n > longest {
			longest = n
		}
	}
	s.resizeColumn(index, fitWidth(longest))
}

// Reconcile offers a freshly decoded grid from the textual side. The grid is
// adopted only when structurally different from the current one; this guard
// keeps gridmark's own just-written text from clobbering in-progress typing.
// Existing column widths are preserved by index, new columns get the default.
// Returns true when the grid was replaced.
func (s *Session) Reconcile(newGrid table.Grid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if newGrid.IsEmpty() || s.grid.Equal(newGrid) {
		return false
	}

	s.grid = newGrid.Clone().Normalize()

	widths := make([]int, s.grid.Cols())
	for i := range widths {
		if i < len(s.colWidths) {
			widths[i] = s.colWidths[i]
		} else {
			widths[i] = s.defaultWidth
		}
	}
	s.colWidths = widths

	s.clampActive()
	if s.rowIndexMode {
		s.recomputeRowNumbers()
	}
	s.emit()
	return true
}

// recomputeRowNumbers rewrites column 0 of every data row to its 1-based row
// number. Reports whether anything changed.
func (s *Session) recomputeRowNumbers() bool {
	changed := false
	for r := 1; r < s.grid.Rows(); r++ {
		want := strconv.Itoa(r)
		if s.grid[r][0] != want {
			s.grid[r][0] = want
			changed = true
		}
	}
	return changed
}

// clampActive pulls the active cell back inside the grid after a removal or
// wholesale replacement shrank it.
func (s *Session) clampActive() {
	if s.active == nil {
		return
	}
	s.active.Row = clamp(s.active.Row, 0, s.grid.Rows()-1)
	s.active.Col = clamp(s.active.Col, 0, s.grid.Cols()-1)
}

func (s *Session) emit() {
	if s.onChange != nil {
		s.onChange(s.snapshot())
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fitWidth converts a cell character count to presentation width units.
const (
	fitCharWidth = 10
	fitPadding   = 20
	fitMinWidth  = 60
)

func fitWidth(chars int) int {
	w := chars*fitCharWidth + fitPadding
	if w < fitMinWidth {
		return fitMinWidth
	}
	return w
}

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmark/gridmark/internal/core/table"
)

func TestResolveKey(t *testing.T) {
	s := newTestSession(table.Grid{{"A", "B"}, {"1", "2"}})

	t.Run("plain enter advances to next column", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "enter"}, CellRef{Row: 0, Col: 0})

		assert.Equal(t, NavAction{Kind: ActionFocus, Target: CellRef{Row: 0, Col: 1}}, got)
	})

	t.Run("plain enter wraps to next row at last column", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "enter"}, CellRef{Row: 0, Col: 1})

		assert.Equal(t, NavAction{Kind: ActionFocus, Target: CellRef{Row: 1, Col: 0}}, got)
	})

	t.Run("plain enter on last cell is a no-op", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "enter"}, CellRef{Row: 1, Col: 1})

		assert.Equal(t, ActionNone, got.Kind)
	})

	t.Run("wrap lands on first editable column in row index mode", func(t *testing.T) {
		idx := NewSession(table.Grid{{"#", "B"}, {"1", "2"}}, Options{RowIndexMode: true})

		got := idx.ResolveKey(Combo{Key: "enter"}, CellRef{Row: 0, Col: 1})

		assert.Equal(t, CellRef{Row: 1, Col: 1}, got.Target)
	})

	t.Run("ctrl+enter beats plain enter", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "enter", Ctrl: true}, CellRef{Row: 0, Col: 0})

		assert.Equal(t, ActionInsertRowBelow, got.Kind)
		assert.Equal(t, CellRef{Row: 1, Col: 0}, got.Target)
	})

	t.Run("cmd+enter matches ctrl+enter", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "enter", Meta: true}, CellRef{Row: 0, Col: 0})

		assert.Equal(t, ActionInsertRowBelow, got.Kind)
	})

	t.Run("shift+enter is a literal line break, not navigation", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "enter", Shift: true}, CellRef{Row: 0, Col: 0})

		assert.Equal(t, ActionLineBreak, got.Kind)
	})

	t.Run("shift+alt+down duplicates the row", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "down", Shift: true, Alt: true}, CellRef{Row: 1, Col: 0})

		assert.Equal(t, ActionDuplicateRow, got.Kind)
		assert.Equal(t, CellRef{Row: 2, Col: 0}, got.Target)
	})

	t.Run("plain down is not handled", func(t *testing.T) {
		got := s.ResolveKey(Combo{Key: "down"}, CellRef{Row: 0, Col: 0})

		assert.Equal(t, ActionNone, got.Kind)
	})
}

func TestApplyKey(t *testing.T) {
	t.Run("no active cell leaves the key unhandled", func(t *testing.T) {
		s := newTestSession(table.Grid{{"A"}, {"1"}})

		assert.False(t, s.ApplyKey(Combo{Key: "enter"}))
	})

	t.Run("ctrl+enter inserts and moves focus below", func(t *testing.T) {
		s := newTestSession(table.Grid{{"A"}, {"1"}})
		s.Focus(0, 0)

		require.True(t, s.ApplyKey(Combo{Key: "enter", Ctrl: true}))

		assert.Equal(t, 3, s.RowCount())
		cell, _ := s.ActiveCell()
		assert.Equal(t, CellRef{Row: 1, Col: 0}, cell)
	})

	t.Run("shift+alt+down duplicates and focuses the copy", func(t *testing.T) {
		s := newTestSession(table.Grid{{"A"}, {"1"}})
		s.Focus(1, 0)

		require.True(t, s.ApplyKey(Combo{Key: "down", Shift: true, Alt: true}))

		assert.Equal(t, table.Grid{{"A"}, {"1"}, {"1"}}, s.Grid())
		cell, _ := s.ActiveCell()
		assert.Equal(t, CellRef{Row: 2, Col: 0}, cell)
	})

	t.Run("enter on the last cell changes nothing", func(t *testing.T) {
		s := newTestSession(table.Grid{{"A"}, {"1"}})
		s.Focus(1, 0)

		assert.False(t, s.ApplyKey(Combo{Key: "enter"}))

		cell, _ := s.ActiveCell()
		assert.Equal(t, CellRef{Row: 1, Col: 0}, cell)
	})
}

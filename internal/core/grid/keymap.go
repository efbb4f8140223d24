package grid

// Combo is a physical key combination as reported by the presentation layer.
type Combo struct {
	Key   string // logical key name: "enter", "down", ...
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// ActionKind classifies what a key combination does to the grid.
type ActionKind int

const (
	// ActionNone means the combination is not handled by the grid.
	ActionNone ActionKind = iota
	// ActionFocus moves focus to Target without mutating the grid.
	ActionFocus
	// ActionInsertRowBelow inserts a row below the current one and focuses Target.
	ActionInsertRowBelow
	// ActionDuplicateRow duplicates the current row and focuses Target.
	ActionDuplicateRow
	// ActionLineBreak permits a literal line break inside the cell's text
	// widget; the grid itself does not change.
	ActionLineBreak
)

// NavAction is the resolved outcome of a key combination.
type NavAction struct {
	Kind   ActionKind
	Target CellRef
}

// ResolveKey maps a key combination at the given cell to a navigation action
// without mutating any state. The most specific modifier combination wins;
// plain Enter only fires when no relevant modifier is held.
func (s *Session) ResolveKey(combo Combo, cell CellRef) NavAction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolveKey(combo, cell)
}

func (s *Session) resolveKey(combo Combo, cell CellRef) NavAction {
	switch combo.Key {
	case "enter":
		switch {
		case combo.Ctrl || combo.Meta:
			return NavAction{Kind: ActionInsertRowBelow, Target: CellRef{Row: cell.Row + 1, Col: cell.Col}}
		case combo.Shift:
			return NavAction{Kind: ActionLineBreak}
		default:
			return s.enterAdvance(cell)
		}
	case "down":
		if combo.Shift && combo.Alt {
			return NavAction{Kind: ActionDuplicateRow, Target: CellRef{Row: cell.Row + 1, Col: cell.Col}}
		}
	}
	return NavAction{Kind: ActionNone}
}

// enterAdvance implements plain-Enter navigation: next column, then the first
// editable column of the next row, and a no-op on the grid's last cell.
func (s *Session) enterAdvance(cell CellRef) NavAction {
	lastRow := s.grid.Rows() - 1
	lastCol := s.grid.Cols() - 1

	switch {
	case cell.Col < lastCol:
		return NavAction{Kind: ActionFocus, Target: CellRef{Row: cell.Row, Col: cell.Col + 1}}
	case cell.Row < lastRow:
		return NavAction{Kind: ActionFocus, Target: CellRef{Row: cell.Row + 1, Col: s.firstEditableCol()}}
	default:
		return NavAction{Kind: ActionNone}
	}
}

// firstEditableCol skips the derived index column when row-index mode is on.
func (s *Session) firstEditableCol() int {
	if s.rowIndexMode && s.grid.Cols() > 1 {
		return 1
	}
	return 0
}

// ApplyKey resolves a key combination against the active cell and executes
// the resulting action. Returns true when the key was handled.
func (s *Session) ApplyKey(combo Combo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, ok := s.activeCell()
	if !ok {
		return false
	}

	action := s.resolveKey(combo, cell)
	switch action.Kind {
	case ActionFocus:
		s.focus(action.Target.Row, action.Target.Col)
	case ActionInsertRowBelow:
		s.insertRow(1)
		s.focus(action.Target.Row, action.Target.Col)
	case ActionDuplicateRow:
		s.duplicateRow(cell.Row)
		s.focus(action.Target.Row, action.Target.Col)
	case ActionLineBreak, ActionNone:
		return action.Kind == ActionLineBreak
	}
	return true
}

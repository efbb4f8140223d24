// Package table converts between Markdown pipe-table text and a structured
// grid, and locates table spans inside a document.
package table

// Grid is a row-major matrix of cell strings. Row 0 is the header; rows >= 1
// are data rows. A grid is always rectangular after construction.
type Grid [][]string

// NewEmptyGrid returns the default starting grid: 2x2 empty cells.
func NewEmptyGrid() Grid {
	return Grid{{"", ""}, {"", ""}}
}

// Rows returns the number of rows, including the header.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the column count of the header row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsEmpty reports whether the grid has no rows. Decode produces an empty grid
// for text that is not a table; callers must treat it as a negative result.
func (g Grid) IsEmpty() bool {
	return len(g) == 0
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

// Equal reports cell-by-cell structural equality with other.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for i, row := range g {
		if len(row) != len(other[i]) {
			return false
		}
		for j, cell := range row {
			if cell != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Normalize pads every row to the widest row so the grid is rectangular.
// Partially typed tables routinely produce ragged rows; they are padded, not
// rejected.
func (g Grid) Normalize() Grid {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range g {
		for len(row) < width {
			row = append(row, "")
		}
		g[i] = row
	}
	return g
}

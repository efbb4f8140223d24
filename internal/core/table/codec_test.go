package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("basic table", func(t *testing.T) {
		grid := Decode("| A | B |\n|---|---|\n| 1 | 2 |\n")

		require.Equal(t, 2, grid.Rows())
		assert.Equal(t, Grid{{"A", "B"}, {"1", "2"}}, grid)
	})

	t.Run("separator row is removed", func(t *testing.T) {
		grid := Decode("| H |\n| :-: |\n| x |")

		assert.Equal(t, Grid{{"H"}, {"x"}}, grid)
	})

	t.Run("separator with alignment colons", func(t *testing.T) {
		grid := Decode("| a | b | c |\n| :-- | --: | :-: |\n| 1 | 2 | 3 |")

		assert.Equal(t, Grid{{"a", "b", "c"}, {"1", "2", "3"}}, grid)
	})

	t.Run("non-separator second row is kept", func(t *testing.T) {
		grid := Decode("| A | B |\n| 1 | 2 |")

		assert.Equal(t, Grid{{"A", "B"}, {"1", "2"}}, grid)
	})

	t.Run("fewer than two lines yields empty grid", func(t *testing.T) {
		assert.True(t, Decode("| only |").IsEmpty())
		assert.True(t, Decode("").IsEmpty())
	})

	t.Run("missing leading or trailing pipe", func(t *testing.T) {
		grid := Decode("A | B\n--- | ---\n1 | 2")

		assert.Equal(t, Grid{{"A", "B"}, {"1", "2"}}, grid)
	})

	t.Run("windows line endings", func(t *testing.T) {
		grid := Decode("| A | B |\r\n|---|---|\r\n| 1 | 2 |\r\n")

		assert.Equal(t, Grid{{"A", "B"}, {"1", "2"}}, grid)
	})

	t.Run("ragged data row is padded to header width", func(t *testing.T) {
		grid := Decode("| A | B | C |\n|---|---|---|\n| 1 |")

		require.Equal(t, 2, grid.Rows())
		assert.Equal(t, []string{"1", "", ""}, []string(grid[1]))
	})

	t.Run("line without pipes becomes a single-cell row", func(t *testing.T) {
		grid := Decode("| A |\n|---|\nplain text")

		assert.Equal(t, Grid{{"A"}, {"plain text"}}, grid)
	})
}

func TestEncode(t *testing.T) {
	t.Run("pads columns and appends separator", func(t *testing.T) {
		out := Encode(Grid{{"Name", "N"}, {"ab", "1"}})

		assert.Equal(t, "| Name | N   |\n| ---- | --- |\n| ab   | 1   |\n", out)
	})

	t.Run("column width floor of three", func(t *testing.T) {
		out := Encode(Grid{{"a"}, {"b"}})

		assert.Equal(t, "| a   |\n| --- |\n| b   |\n", out)
	})

	t.Run("empty grid encodes to empty text", func(t *testing.T) {
		assert.Equal(t, "", Encode(Grid{}))
	})

	t.Run("trailing newline after final row", func(t *testing.T) {
		out := Encode(Grid{{"A"}})

		assert.Equal(t, "| A   |\n| --- |\n", out)
	})
}

func TestRoundTrip(t *testing.T) {
	grids := []Grid{
		{{"A", "B"}, {"1", "2"}},
		{{"h"}},
		{{"a", "", "c"}, {"", "", ""}, {"x", "y", "z"}},
		{{"multi" + BreakToken + "line", "b"}, {"1", "2"}},
	}

	for _, g := range grids {
		decoded := Decode(Encode(g))
		assert.True(t, g.Equal(decoded), "round trip changed grid %v -> %v", g, decoded)
	}
}

func TestGrid(t *testing.T) {
	t.Run("clone is independent", func(t *testing.T) {
		g := Grid{{"a", "b"}, {"c", "d"}}
		c := g.Clone()
		c[0][0] = "changed"

		assert.Equal(t, "a", g[0][0])
	})

	t.Run("equal compares cell by cell", func(t *testing.T) {
		assert.True(t, Grid{{"a"}}.Equal(Grid{{"a"}}))
		assert.False(t, Grid{{"a"}}.Equal(Grid{{"b"}}))
		assert.False(t, Grid{{"a"}}.Equal(Grid{{"a"}, {"b"}}))
		assert.False(t, Grid{{"a"}}.Equal(Grid{{"a", "b"}}))
	})

	t.Run("default empty grid is 2x2", func(t *testing.T) {
		g := NewEmptyGrid()
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
	})
}

func TestCellText(t *testing.T) {
	t.Run("line breaks become tokens", func(t *testing.T) {
		assert.Equal(t, "a<br>b", EncodeCellText("a\nb"))
		assert.Equal(t, "a\nb", DecodeCellText("a<br>b"))
	})

	t.Run("literal token round-trips", func(t *testing.T) {
		in := "uses <br> literally"
		assert.Equal(t, in, DecodeCellText(EncodeCellText(in)))
	})

	t.Run("backslashes round-trip", func(t *testing.T) {
		cases := []string{`C:\path`, `\<br>`, "a\\\nb", `\\`, `trailing\`}
		for _, in := range cases {
			assert.Equal(t, in, DecodeCellText(EncodeCellText(in)), "input %q", in)
		}
	})

	t.Run("carriage returns normalize", func(t *testing.T) {
		assert.Equal(t, "a<br>b", EncodeCellText("a\r\nb"))
	})
}

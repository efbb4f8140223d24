package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTableAt(t *testing.T) {
	doc := "pre\n| A |\n|---|\n| 1 |\npost\n"

	t.Run("finds span around anchor line", func(t *testing.T) {
		span, ok := FindTableAt(doc, 1)

		require.True(t, ok)
		assert.Equal(t, 1, span.StartLine)
		assert.Equal(t, 3, span.EndLine)
		assert.Equal(t, "| A |\n|---|\n| 1 |", span.Text)
	})

	t.Run("anchor anywhere inside the table yields the same span", func(t *testing.T) {
		for _, line := range []int{1, 2, 3} {
			span, ok := FindTableAt(doc, line)
			require.True(t, ok, "line %d", line)
			assert.Equal(t, 1, span.StartLine)
			assert.Equal(t, 3, span.EndLine)
		}
	})

	t.Run("no pipe on anchor line", func(t *testing.T) {
		_, ok := FindTableAt(doc, 0)
		assert.False(t, ok)

		_, ok = FindTableAt(doc, 4)
		assert.False(t, ok)
	})

	t.Run("out of range line index", func(t *testing.T) {
		_, ok := FindTableAt(doc, -1)
		assert.False(t, ok)

		_, ok = FindTableAt(doc, 99)
		assert.False(t, ok)
	})

	t.Run("table at document boundaries", func(t *testing.T) {
		span, ok := FindTableAt("| A |\n|---|\n| 1 |", 0)

		require.True(t, ok)
		assert.Equal(t, 0, span.StartLine)
		assert.Equal(t, 2, span.EndLine)
	})

	t.Run("row missing trailing pipe stays in span", func(t *testing.T) {
		span, ok := FindTableAt("| A |\n|---|\n| 1\ntext", 0)

		require.True(t, ok)
		assert.Equal(t, 2, span.EndLine)
	})
}

func TestFindAll(t *testing.T) {
	t.Run("multiple tables", func(t *testing.T) {
		doc := "intro\n| A |\n|---|\n| 1 |\n\ntext\n| X | Y |\n|---|---|\n| 1 | 2 |\nend\n"

		spans := FindAll(doc)

		require.Len(t, spans, 2)
		assert.Equal(t, 1, spans[0].StartLine)
		assert.Equal(t, 3, spans[0].EndLine)
		assert.Equal(t, 6, spans[1].StartLine)
		assert.Equal(t, 8, spans[1].EndLine)
	})

	t.Run("single piped line is not a table", func(t *testing.T) {
		spans := FindAll("a | b\n\nplain\n")

		assert.Empty(t, spans)
	})

	t.Run("no tables", func(t *testing.T) {
		assert.Empty(t, FindAll("just\nsome\ntext\n"))
	})
}

package commands

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestHeaderLabel(t *testing.T) {
	t.Run("short header passes through", func(t *testing.T) {
		assert.Equal(t, "Task | Done", headerLabel([]string{"Task", "Done"}))
	})

	t.Run("long header is truncated with ellipsis", func(t *testing.T) {
		got := headerLabel([]string{strings.Repeat("x", 200)})

		assert.True(t, strings.HasSuffix(got, "…"))
		assert.Less(t, len([]rune(got)), 200)
	})

	t.Run("multibyte header truncates on rune boundaries", func(t *testing.T) {
		got := headerLabel([]string{strings.Repeat("月", 200)})

		assert.True(t, utf8.ValidString(got))
		assert.True(t, strings.HasSuffix(got, "…"))
	})
}

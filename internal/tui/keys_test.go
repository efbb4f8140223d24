package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridmark/gridmark/internal/core/grid"
)

func TestParseCombo(t *testing.T) {
	t.Run("plain key", func(t *testing.T) {
		assert.Equal(t, grid.Combo{Key: "enter"}, parseCombo("enter"))
	})

	t.Run("single modifier", func(t *testing.T) {
		assert.Equal(t, grid.Combo{Key: "enter", Ctrl: true}, parseCombo("ctrl+enter"))
		assert.Equal(t, grid.Combo{Key: "enter", Shift: true}, parseCombo("shift+enter"))
	})

	t.Run("stacked modifiers", func(t *testing.T) {
		combo := parseCombo("shift+alt+down")
		assert.Equal(t, "down", combo.Key)
		assert.True(t, combo.Shift)
		assert.True(t, combo.Alt)
		assert.False(t, combo.Ctrl)
	})

	t.Run("meta aliases", func(t *testing.T) {
		assert.True(t, parseCombo("cmd+enter").Meta)
		assert.True(t, parseCombo("meta+enter").Meta)
	})
}

func TestCellLabel(t *testing.T) {
	assert.Equal(t, "plain", cellLabel("plain"))
	assert.Equal(t, "first…", cellLabel("first\nsecond"))
	assert.Equal(t, "", cellLabel(""))
}

func TestThemePalette(t *testing.T) {
	t.Run("known theme", func(t *testing.T) {
		assert.Equal(t, themes["gruvbox"], ThemePalette("gruvbox"))
	})

	t.Run("unknown falls back to default", func(t *testing.T) {
		assert.Equal(t, themes[DefaultTheme], ThemePalette("no-such-theme"))
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, 300, cfg.Editor.DebounceMS)
		assert.Equal(t, 150, cfg.Editor.DefaultColumnWidth)
		assert.Equal(t, []string{"**/*.md"}, cfg.Format.Patterns)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("editor:\n  debounce_ms: 50\n  row_index_mode: true\n"), 0o644))

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 50, cfg.Editor.DebounceMS)
		assert.True(t, cfg.Editor.RowIndexMode)
		// untouched keys keep defaults
		assert.Equal(t, 150, cfg.Editor.DefaultColumnWidth)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\n - bad"), 0o644))

		_, err := Load(path)

		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("negative debounce rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Editor.DebounceMS = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero column width rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Editor.DefaultColumnWidth = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad glob pattern rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Format.Patterns = []string{"[unclosed"}
		assert.Error(t, cfg.Validate())
	})
}

package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridmark/gridmark/internal/core/config"
	"github.com/gridmark/gridmark/internal/core/eventbus"
)

const sampleDoc = "# Notes\n\n| Task | Done |\n| --- | --- |\n| write | no |\n\ntrailing text\n"

func newTestService() *Service {
	cfg := config.DefaultConfig()
	return NewService(&cfg, eventbus.New(16))
}

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestService_Open(t *testing.T) {
	t.Run("opens table at line", func(t *testing.T) {
		svc := newTestService()
		path := writeSample(t, sampleDoc)

		h, err := svc.Open(path, 2)
		require.NoError(t, err)
		defer svc.Close(path)

		assert.Equal(t, 2, h.Span.StartLine)
		assert.Equal(t, 4, h.Span.EndLine)
		assert.Equal(t, 2, h.Session.RowCount())
		assert.Equal(t, 2, h.Session.ColCount())
	})

	t.Run("negative line opens the first table", func(t *testing.T) {
		svc := newTestService()
		path := writeSample(t, sampleDoc)

		h, err := svc.Open(path, -1)
		require.NoError(t, err)
		defer svc.Close(path)

		assert.Equal(t, 2, h.Span.StartLine)
	})

	t.Run("line without a table fails with ErrNoTable", func(t *testing.T) {
		svc := newTestService()
		path := writeSample(t, sampleDoc)

		_, err := svc.Open(path, 0)

		assert.ErrorIs(t, err, ErrNoTable)
	})

	t.Run("document with no tables fails with ErrNoTable", func(t *testing.T) {
		svc := newTestService()
		path := writeSample(t, "nothing here\n")

		_, err := svc.Open(path, -1)

		assert.ErrorIs(t, err, ErrNoTable)
	})

	t.Run("missing file propagates the provider error", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Open(filepath.Join(t.TempDir(), "missing.md"), -1)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoTable)
	})

	t.Run("reopening returns the same handle", func(t *testing.T) {
		svc := newTestService()
		path := writeSample(t, sampleDoc)

		h1, err := svc.Open(path, 2)
		require.NoError(t, err)
		defer svc.Close(path)

		h2, err := svc.Open(path, 3)
		require.NoError(t, err)

		assert.Same(t, h1, h2)
	})
}

func TestFormatFile(t *testing.T) {
	t.Run("normalizes ragged tables", func(t *testing.T) {
		path := writeSample(t, "|A|B|\n|---|---|\n|1|2|\n")

		n, err := FormatFile(path)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		data, _ := os.ReadFile(path)
		assert.Equal(t, "| A   | B   |\n| --- | --- |\n| 1   | 2   |\n", string(data))
	})

	t.Run("already normalized file is untouched", func(t *testing.T) {
		content := "| A   | B   |\n| --- | --- |\n| 1   | 2   |\n"
		path := writeSample(t, content)

		n, err := FormatFile(path)
		require.NoError(t, err)
		assert.Zero(t, n)

		data, _ := os.ReadFile(path)
		assert.Equal(t, content, string(data))
	})

	t.Run("multiple tables keep surrounding text", func(t *testing.T) {
		path := writeSample(t, "intro\n|A|\n|---|\n|1|\n\nmid\n|X|Y|\n|---|---|\n|a|b|\nend\n")

		n, err := FormatFile(path)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		data, _ := os.ReadFile(path)
		text := string(data)
		assert.Contains(t, text, "intro\n")
		assert.Contains(t, text, "\nmid\n")
		assert.Contains(t, text, "\nend\n")
		assert.Contains(t, text, "| X   | Y   |")
	})
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("x"), 0o644))

	files, err := Glob(dir, []string{"**/*.md"})

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.md"),
		filepath.Join(dir, "sub", "b.md"),
	}, files)
}

func TestListTables(t *testing.T) {
	path := writeSample(t, sampleDoc)

	infos, err := ListTables(path)

	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 2, infos[0].Span.StartLine)
	assert.Equal(t, 2, infos[0].Rows)
	assert.Equal(t, 2, infos[0].Columns)
	assert.Equal(t, []string{"Task", "Done"}, infos[0].Header)
}

package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) *File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return NewFile(path)
}

func TestFile_Text(t *testing.T) {
	f := writeDoc(t, "hello\nworld\n")

	text, err := f.Text()

	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", text)
}

func TestFile_LineText(t *testing.T) {
	f := writeDoc(t, "a\nb\nc\n")

	t.Run("valid line", func(t *testing.T) {
		line, err := f.LineText(1)
		require.NoError(t, err)
		assert.Equal(t, "b", line)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := f.LineText(3)
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = f.LineText(-1)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}

func TestFile_ReplaceRange(t *testing.T) {
	t.Run("replaces middle lines", func(t *testing.T) {
		f := writeDoc(t, "pre\nold1\nold2\npost\n")

		require.NoError(t, f.ReplaceRange(1, 2, "new1\nnew2\nnew3"))

		text, err := f.Text()
		require.NoError(t, err)
		assert.Equal(t, "pre\nnew1\nnew2\nnew3\npost\n", text)
	})

	t.Run("accepts trailing newline on replacement", func(t *testing.T) {
		f := writeDoc(t, "a\nb\nc\n")

		require.NoError(t, f.ReplaceRange(1, 1, "B\n"))

		text, _ := f.Text()
		assert.Equal(t, "a\nB\nc\n", text)
	})

	t.Run("range can grow the document", func(t *testing.T) {
		f := writeDoc(t, "a\nb\n")

		require.NoError(t, f.ReplaceRange(1, 1, "x\ny\nz"))

		text, _ := f.Text()
		assert.Equal(t, "a\nx\ny\nz\n", text)
	})

	t.Run("invalid range fails", func(t *testing.T) {
		f := writeDoc(t, "a\nb\n")

		assert.ErrorIs(t, f.ReplaceRange(0, 5, "x"), ErrInvalidRange)
		assert.ErrorIs(t, f.ReplaceRange(2, 1, "x"), ErrInvalidRange)
		assert.ErrorIs(t, f.ReplaceRange(-1, 0, "x"), ErrInvalidRange)
	})

	t.Run("missing file propagates", func(t *testing.T) {
		f := NewFile(filepath.Join(t.TempDir(), "missing.md"))

		assert.Error(t, f.ReplaceRange(0, 0, "x"))
	})
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\r\nb"))
	assert.Equal(t, []string{""}, SplitLines(""))
}

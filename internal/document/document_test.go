package document

import (
	"os"
	"path/filepath"
	"testing"

	"mdtui/internal/buffer"
	"mdtui/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "notes.md", "hello\nworld\n")

	doc := Load(path)
	assert.Equal(t, path, doc.Path())
	assert.Equal(t, "notes", doc.Name())
	assert.Equal(t, []string{"hello", "world"}, doc.Lines())
	assert.Equal(t, buffer.Pos{}, doc.Buffer().Cursor())
}

func TestLoadWithoutTrailingNewline(t *testing.T) {
	doc := Load(writeFile(t, "todo.txt", "a\nb"))
	assert.Equal(t, []string{"a", "b"}, doc.Lines())
}

func TestLoadEmptyFile(t *testing.T) {
	doc := Load(writeFile(t, "empty.md", ""))
	assert.Equal(t, []string{""}, doc.Lines())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new-note.md")

	doc := Load(path)
	assert.Equal(t, "new-note", doc.Name())
	assert.Equal(t, []string{""}, doc.Lines())
	assert.NoFileExists(t, path, "loading must not create the file")
}

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/notes/todo.md", "todo"},
		{"todo", "todo"},
		{"archive.tar.gz", "archive.tar"},
		{"/notes/.notes", ".notes"},
		{"/", ""},
		{".", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, stem(tt.path))
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeFile(t, "notes.md", "hello\nworld\n")

	doc := Load(path)
	require.NoError(t, doc.Save())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(content))
}

func TestSaveAddsTrailingNewline(t *testing.T) {
	path := writeFile(t, "notes.md", "a\nb")

	doc := Load(path)
	doc.Buffer().SetCursor(buffer.Pos{Row: 1, Col: 1})
	doc.Buffer().InsertRune('c')
	require.NoError(t, doc.Save())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nbc\n", string(content))
	assert.Equal(t, "a\nbc\n", doc.Text())
	assert.Equal(t, buffer.Pos{Row: 1, Col: 2}, doc.Buffer().Cursor(), "save keeps the cursor")
}

func TestSaveCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.md")

	doc := Load(path)
	doc.Buffer().InsertText("first line")
	require.NoError(t, doc.Save())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first line\n", string(content))
}

func TestSaveUnnamed(t *testing.T) {
	doc := New()
	assert.Empty(t, doc.Name())

	err := doc.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoFilePath)
}

func TestSaveMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "note.md")

	doc := Load(path)
	err := doc.Save()
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))
	assert.Contains(t, err.Error(), path)
}

func TestSaveToDirectory(t *testing.T) {
	dir := t.TempDir()

	doc := Load(dir)
	err := doc.Save()
	require.Error(t, err)
	assert.NotEqual(t, errors.Unknown, errors.KindOf(err))
}

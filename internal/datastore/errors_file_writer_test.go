package datastore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aleister1102/faultyurls/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"400":                       "400",
		"Bad Request!":              "BadRequest",
		"Illegal character in path": "Illegalcharacterinpath",
		"a/b\\c:d":                  "abcd",
		"":                          "",
		"żółw 42":                   "w42",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, SanitizeLabel(input), "input %q", input)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestErrorsFileWriter_WriteAll(t *testing.T) {
	dir := t.TempDir()
	groups := models.NewErrorGroups()
	groups.Add("400", "http://x/b")
	groups.Add("400", "http://x/a")
	groups.Add("400", "http://x/a")
	groups.Add("500", "http://x/c")
	groups.Add("Bad Request!", "http://x/d")

	results, err := NewErrorsFileWriter(zerolog.Nop(), "").WriteAll(groups, dir, "hostA-")
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, WriteResult{
		Label:    "400",
		Path:     filepath.Join(dir, "hostA-400.errors"),
		URLCount: 2,
		Bytes:    len("http://x/a\nhttp://x/b"),
	}, results[0])

	assert.Equal(t, "http://x/a\nhttp://x/b", readFile(t, filepath.Join(dir, "hostA-400.errors")))
	assert.Equal(t, "http://x/c", readFile(t, filepath.Join(dir, "hostA-500.errors")))
	assert.Equal(t, "http://x/d", readFile(t, filepath.Join(dir, "hostA-BadRequest.errors")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestErrorsFileWriter_RerunIsIdentical(t *testing.T) {
	dir := t.TempDir()
	groups := models.NewErrorGroups()
	groups.Add("404", "http://x/2")
	groups.Add("404", "http://x/1")

	w := NewErrorsFileWriter(zerolog.Nop(), ".errors")
	_, err := w.WriteAll(groups, dir, "")
	require.NoError(t, err)
	first := readFile(t, filepath.Join(dir, "404.errors"))

	results, err := w.WriteAll(groups, dir, "")
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, filepath.Join(dir, "404.errors")))
	require.NotNil(t, results[0].Changes)
	assert.True(t, results[0].Changes.IsIdentical)
}

func TestErrorsFileWriter_TruncatesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "404.errors")
	require.NoError(t, os.WriteFile(path, []byte("a much longer previous content\nline"), 0o644))

	groups := models.NewErrorGroups()
	groups.Add("404", "http://x")

	results, err := NewErrorsFileWriter(zerolog.Nop(), "").WriteAll(groups, dir, "")
	require.NoError(t, err)
	assert.Equal(t, "http://x", readFile(t, path))
	require.NotNil(t, results[0].Changes)
	assert.Equal(t, 1, results[0].Changes.LinesAdded)
	assert.Equal(t, 2, results[0].Changes.LinesDeleted)
}

func TestErrorsFileWriter_CustomExtension(t *testing.T) {
	w := NewErrorsFileWriter(zerolog.Nop(), ".txt")
	assert.Equal(t, filepath.Join("out", "p-404.txt"), w.FilePath("out", "p-", "404"))
}

func TestErrorsFileWriter_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	groups := models.NewErrorGroups()
	groups.Add("404", "http://x")

	results, err := NewErrorsFileWriter(zerolog.Nop(), "").WriteAll(groups, dir, "")
	assert.Error(t, err)
	assert.Empty(t, results)
	assert.NoDirExists(t, dir)
}

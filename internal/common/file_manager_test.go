package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_ValidateFileForReading(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	path := filepath.Join(dir, "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	info, err := fm.ValidateFileForReading(path)
	require.NoError(t, err)
	assert.Equal(t, "log.csv", info.Name)
	assert.Equal(t, int64(4), info.Size)

	_, err = fm.ValidateFileForReading(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fm.ValidateFileForReading(dir)
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestFileManager_ValidateDirectory(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := fm.ValidateDirectory(dir)
	assert.NoError(t, err)

	_, err = fm.ValidateDirectory(file)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fm.ValidateDirectory(filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileManager_WriteFile_Truncates(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "out.errors")

	require.NoError(t, fm.WriteFile(path, []byte("a much longer first version"), DefaultFilePermissions))
	require.NoError(t, fm.WriteFile(path, []byte("short"), DefaultFilePermissions))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestFileManager_WriteFile_NoParentDirectory(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "missing", "out.errors")

	err := fm.WriteFile(path, []byte("x"), DefaultFilePermissions)
	assert.Error(t, err)
	assert.NoFileExists(t, path)
	assert.NoDirExists(t, filepath.Dir(path))
}

func TestFileManager_OpenForReading(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte("responseCode,URL\n"), 0644))

	f, err := fm.OpenForReading(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = fm.OpenForReading(path + ".missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

package common

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// DefaultFilePermissions is used for every file the tool writes.
const DefaultFilePermissions fs.FileMode = 0644

// FileInfo is the subset of file metadata callers act on.
type FileInfo struct {
	Path  string
	Name  string
	Size  int64
	IsDir bool
}

// FileManager checks and opens input paths and writes output files.
// It never creates directories.
type FileManager struct {
	logger zerolog.Logger
}

func NewFileManager(logger zerolog.Logger) *FileManager {
	return &FileManager{
		logger: logger.With().Str("component", "FileManager").Logger(),
	}
}

// Stat returns metadata for path; a missing path wraps ErrNotFound.
func (fm *FileManager) Stat(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, WrapErrorf(ErrNotFound, "file not found: %s", path)
	}
	if err != nil {
		return nil, WrapErrorf(err, "failed to get file info for: %s", path)
	}
	return &FileInfo{
		Path:  path,
		Name:  stat.Name(),
		Size:  stat.Size(),
		IsDir: stat.IsDir(),
	}, nil
}

// ValidateFileForReading checks that path exists and is not a directory.
func (fm *FileManager) ValidateFileForReading(path string) (*FileInfo, error) {
	info, err := fm.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir {
		return nil, NewValidationError("path", path, "is a directory, not a file")
	}
	return info, nil
}

// ValidateDirectory checks that path exists and is a directory.
func (fm *FileManager) ValidateDirectory(path string) (*FileInfo, error) {
	info, err := fm.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir {
		return nil, WrapErrorf(ErrNotFound, "not a directory: %s", path)
	}
	return info, nil
}

// OpenForReading validates and opens a file. The caller closes it.
func (fm *FileManager) OpenForReading(path string) (*os.File, error) {
	if _, err := fm.ValidateFileForReading(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, WrapErrorf(err, "failed to open file: %s", path)
	}

	fm.logger.Debug().Str("path", path).Msg("Opened file for reading")
	return file, nil
}

// WriteFile creates or truncates path and writes data to it. The parent
// directory must exist.
func (fm *FileManager) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if err := writeTruncating(path, data, perm); err != nil {
		return WrapError(err, fmt.Sprintf("failed to write file: %s", path))
	}

	fm.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}

func writeTruncating(path string, data []byte, perm fs.FileMode) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

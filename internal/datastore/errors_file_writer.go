package datastore

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/aleister1102/faultyurls/internal/differ"
	"github.com/aleister1102/faultyurls/internal/models"
	"github.com/rs/zerolog"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeLabel strips every character outside [A-Za-z0-9].
func SanitizeLabel(label string) string {
	return nonAlphanumeric.ReplaceAllString(label, "")
}

// WriteResult describes one written errors file.
type WriteResult struct {
	Label    string
	Path     string
	URLCount int
	Bytes    int
	// Changes compares against the file this run replaced; nil when the
	// file did not exist before.
	Changes *differ.DiffStatistics
}

// ErrorsFileWriter writes one file per label holding that label's URLs.
type ErrorsFileWriter struct {
	logger      zerolog.Logger
	fileManager *common.FileManager
	listDiffer  *differ.ListDiffer
	extension   string
}

// NewErrorsFileWriter creates a writer producing files with the given
// extension; an empty extension means config.DefaultOutputFileExtension.
func NewErrorsFileWriter(logger zerolog.Logger, extension string) *ErrorsFileWriter {
	if extension == "" {
		extension = config.DefaultOutputFileExtension
	}
	return &ErrorsFileWriter{
		logger:      logger.With().Str("component", "ErrorsFileWriter").Logger(),
		fileManager: common.NewFileManager(logger),
		listDiffer:  differ.NewListDiffer(),
		extension:   extension,
	}
}

// FilePath returns <dir>/<prefix><sanitized label><extension>.
func (w *ErrorsFileWriter) FilePath(dir, prefix, label string) string {
	return filepath.Join(dir, prefix+SanitizeLabel(label)+w.extension)
}

// WriteAll writes every group in label order. dir must already exist.
// Files written before a failure are left in place.
func (w *ErrorsFileWriter) WriteAll(groups *models.ErrorGroups, dir, prefix string) ([]WriteResult, error) {
	results := make([]WriteResult, 0, groups.Len())
	written := make(map[string]string, groups.Len())

	for _, label := range groups.Labels() {
		path := w.FilePath(dir, prefix, label)
		if previous, ok := written[path]; ok {
			w.logger.Warn().
				Str("label", label).
				Str("previous_label", previous).
				Str("path", path).
				Msg("Labels sanitize to the same file name, overwriting")
		}

		w.logger.Info().Msgf("Saving all '%s' URLs in: %s", label, path)

		urls := groups.URLs(label)
		data := []byte(strings.Join(urls, "\n"))
		changes := w.compareWithExisting(path, label, data)

		if err := w.fileManager.WriteFile(path, data, common.DefaultFilePermissions); err != nil {
			w.logger.Error().Err(err).Str("path", path).Msg("Failed to write errors file")
			return results, common.WrapErrorf(err, "failed to save '%s' URLs", label)
		}

		written[path] = label
		results = append(results, WriteResult{
			Label:    label,
			Path:     path,
			URLCount: len(urls),
			Bytes:    len(data),
			Changes:  changes,
		})
	}

	return results, nil
}

// compareWithExisting diffs data against the file at path, if any.
func (w *ErrorsFileWriter) compareWithExisting(path, label string, data []byte) *differ.DiffStatistics {
	previous, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			w.logger.Debug().Err(err).Str("path", path).Msg("Could not read previous errors file")
		}
		return nil
	}

	stats := w.listDiffer.Compare(string(previous), string(data))
	if !stats.IsIdentical {
		w.logger.Info().
			Str("label", label).
			Int("added", stats.LinesAdded).
			Int("removed", stats.LinesDeleted).
			Msg("URLs changed since previous run")
	}
	return &stats
}

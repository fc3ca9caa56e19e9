package datastore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/aleister1102/faultyurls/internal/models"
	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"
)

// ArchiveWriter stores the (label, URL) pairs of a run in a Parquet file.
type ArchiveWriter struct {
	logger zerolog.Logger
	config config.ArchiveConfig
}

// NewArchiveWriter creates an ArchiveWriter.
func NewArchiveWriter(logger zerolog.Logger, cfg config.ArchiveConfig) *ArchiveWriter {
	return &ArchiveWriter{
		logger: logger.With().Str("component", "ArchiveWriter").Logger(),
		config: cfg,
	}
}

// BuildArchiveRecords flattens groups into one record per (label, URL).
// outputs maps each label to the errors file it was written to.
func BuildArchiveRecords(groups *models.ErrorGroups, outputs []WriteResult, sourceFile string, runTime time.Time) []models.ArchiveRecord {
	outputFiles := make(map[string]string, len(outputs))
	for _, out := range outputs {
		outputFiles[out.Label] = out.Path
	}

	records := make([]models.ArchiveRecord, 0, groups.TotalURLs())
	for _, label := range groups.Labels() {
		sanitized := SanitizeLabel(label)
		for _, u := range groups.URLs(label) {
			records = append(records, models.ArchiveRecord{
				Label:          label,
				SanitizedLabel: sanitized,
				URL:            u,
				OutputFile:     outputFiles[label],
				SourceFile:     sourceFile,
				RunTimestamp:   runTime.UnixMilli(),
			})
		}
	}
	return records
}

// Write creates or truncates the configured archive and writes records to it.
func (aw *ArchiveWriter) Write(records []models.ArchiveRecord) error {
	if !aw.config.Enabled() {
		return common.NewValidationError("archive_path", aw.config.Path, "archive path is empty")
	}

	file, err := os.OpenFile(aw.config.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		aw.logger.Error().Err(err).Str("path", aw.config.Path).Msg("Failed to create archive file")
		return common.WrapError(err, "failed to create archive file: "+aw.config.Path)
	}

	writer := parquet.NewGenericWriter[models.ArchiveRecord](file, aw.compressionOption())
	if _, err := writer.Write(records); err != nil {
		_ = writer.Close()
		_ = file.Close()
		return common.WrapError(err, "failed to write archive records")
	}

	if err := writer.Close(); err != nil {
		_ = file.Close()
		return common.WrapError(err, "failed to close parquet writer")
	}

	if err := file.Close(); err != nil {
		return common.WrapError(err, "failed to close archive file")
	}

	aw.logger.Info().
		Str("path", aw.config.Path).
		Int("records", len(records)).
		Str("compression", aw.config.Compression).
		Msg("Wrote run archive")
	return nil
}

func (aw *ArchiveWriter) compressionOption() parquet.WriterOption {
	switch strings.ToLower(aw.config.Compression) {
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "zstd", "":
		return parquet.Compression(&parquet.Zstd)
	case "none":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		aw.logger.Warn().Str("codec", aw.config.Compression).Msg("Unsupported compression codec, defaulting to Uncompressed")
		return parquet.Compression(&parquet.Uncompressed)
	}
}

// ReadArchive returns every record stored in the archive at path.
func ReadArchive(path string) ([]models.ArchiveRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.WrapError(common.ErrNotFound, "archive not found: "+path)
		}
		return nil, fmt.Errorf("failed to open archive '%s': %w", path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive '%s': %w", path, err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file '%s': %w", path, err)
	}

	reader := parquet.NewGenericReader[models.ArchiveRecord](pqFile)
	defer reader.Close()

	records := make([]models.ArchiveRecord, 0, reader.NumRows())
	buf := make([]models.ArchiveRecord, 128)
	for {
		n, err := reader.Read(buf)
		records = append(records, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading records from archive '%s': %w", path, err)
		}
	}

	return records, nil
}

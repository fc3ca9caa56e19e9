package extractor

import (
	"context"
	"encoding/csv"
	"errors"
	"io"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/aleister1102/faultyurls/internal/models"
	"github.com/aleister1102/faultyurls/internal/urlhandler"
	"github.com/rs/zerolog"
)

// Result is the outcome of one extraction pass.
type Result struct {
	Groups      *models.ErrorGroups
	Columns     Columns
	RowsRead    int
	RowsSkipped int
}

// ResourceChecker is polled while rows are aggregated; a non-nil error aborts
// the extraction.
type ResourceChecker interface {
	Check() error
}

// Extractor groups the URLs of a JMeter CSV by failure label.
type Extractor struct {
	logger      zerolog.Logger
	config      config.ExtractorConfig
	normalizer  *urlhandler.URLNormalizer
	fileManager *common.FileManager

	checker    ResourceChecker
	checkEvery int
}

// NewExtractor creates an Extractor for the given configuration.
func NewExtractor(logger zerolog.Logger, cfg config.ExtractorConfig) *Extractor {
	e := &Extractor{
		logger:      logger.With().Str("component", "Extractor").Logger(),
		config:      cfg,
		fileManager: common.NewFileManager(logger),
	}
	if cfg.NormalizeURLs {
		e.normalizer = urlhandler.NewURLNormalizer(urlhandler.URLNormalizationConfig{
			StripTrackingParams: cfg.StripTrackingParams,
			StripParams:         cfg.StripParams,
		})
	}
	return e
}

// SetResourceChecker makes Extract poll checker after every everyRows
// aggregated rows. Skipped rows do not count.
func (e *Extractor) SetResourceChecker(checker ResourceChecker, everyRows int) {
	e.checker = checker
	e.checkEvery = everyRows
}

// ExtractFile opens path and runs Extract over it.
func (e *Extractor) ExtractFile(ctx context.Context, path string) (*Result, error) {
	file, err := e.fileManager.OpenForReading(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return e.Extract(ctx, file)
}

// Extract reads the header, resolves the required columns and classifies
// every following row. Cancelling ctx stops it between rows.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) (*Result, error) {
	reader := NewCSVReader(r)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, asRowError(err, 1)
	}
	// ReuseRecord: the header slice is overwritten by the next Read.
	header = append([]string(nil), header...)

	e.logger.Debug().Strs("header", header).Msg("Read CSV header")

	cols, err := ResolveColumns(header)
	if err != nil {
		return nil, err
	}
	e.logger.Debug().
		Int("response_code_index", cols.ResponseCode).
		Int("url_index", cols.URL).
		Msg("Resolved columns")

	result := &Result{
		Groups:  models.NewErrorGroups(),
		Columns: cols,
	}
	aggregated := 0

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, asRowError(err, result.RowsRead+2)
		}
		result.RowsRead++

		line, _ := reader.FieldPos(0)

		if err := ctx.Err(); err != nil {
			return nil, common.WrapErrorf(err, "extraction interrupted at line %d", line)
		}

		label, url, err := ClassifyRow(row, cols)
		if err != nil {
			if e.config.Strict {
				return nil, &RowError{Line: line, Err: err}
			}
			result.RowsSkipped++
			e.logger.Warn().Err(err).Int("line", line).Msg("Skipping malformed row")
			continue
		}

		result.Groups.Add(label, e.normalize(url))
		aggregated++

		if e.checker != nil && e.checkEvery > 0 && aggregated%e.checkEvery == 0 {
			if err := e.checker.Check(); err != nil {
				return nil, common.WrapErrorf(err, "aborting extraction at line %d", line)
			}
		}
	}

	e.logger.Debug().
		Int("rows_read", result.RowsRead).
		Int("rows_skipped", result.RowsSkipped).
		Int("labels", result.Groups.Len()).
		Msg("Extraction complete")

	return result, nil
}

func (e *Extractor) normalize(url string) string {
	if e.normalizer == nil {
		return url
	}
	normalized, err := e.normalizer.NormalizeURL(url)
	if err != nil {
		e.logger.Debug().Err(err).Str("url", url).Msg("Keeping URL as-is, normalization failed")
		return url
	}
	return normalized
}

// asRowError attaches a line number to CSV syntax errors. Other read
// errors are I/O failures and pass through unchanged.
func asRowError(err error, fallbackLine int) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		line := parseErr.StartLine
		if line == 0 {
			line = fallbackLine
		}
		return &RowError{Line: line, Err: common.WrapError(common.ErrInvalidInput, parseErr.Error())}
	}
	return err
}

package reporter

import (
	"github.com/aleister1102/faultyurls/internal/models"
	"github.com/rs/zerolog"
)

// LabelCount is the number of distinct URLs found for one label.
type LabelCount struct {
	Label string
	Count int
}

// Summary describes what a run found.
type Summary struct {
	Labels      []LabelCount
	TotalURLs   int
	RowsRead    int
	RowsSkipped int
}

// SummaryReporter logs the error groups of a run.
type SummaryReporter struct {
	logger zerolog.Logger
}

// NewSummaryReporter creates a SummaryReporter.
func NewSummaryReporter(logger zerolog.Logger) *SummaryReporter {
	return &SummaryReporter{
		logger: logger.With().Str("component", "SummaryReporter").Logger(),
	}
}

// Report logs one info line per label and, at debug level, every URL.
// groups is not modified.
func (sr *SummaryReporter) Report(groups *models.ErrorGroups, rowsRead, rowsSkipped int) Summary {
	summary := Summary{
		Labels:      make([]LabelCount, 0, groups.Len()),
		RowsRead:    rowsRead,
		RowsSkipped: rowsSkipped,
	}

	for _, label := range groups.Labels() {
		urls := groups.URLs(label)
		sr.logger.Info().Msgf("Found: %d entries of: %s", len(urls), label)

		for _, u := range urls {
			sr.logger.Debug().Msg(u)
		}

		summary.Labels = append(summary.Labels, LabelCount{Label: label, Count: len(urls)})
		summary.TotalURLs += len(urls)
	}

	return summary
}

// Log writes the run totals as a single info line.
func (sr *SummaryReporter) Log(summary Summary) {
	event := sr.logger.Info().
		Int("labels", len(summary.Labels)).
		Int("urls", summary.TotalURLs).
		Int("rows_read", summary.RowsRead)
	if summary.RowsSkipped > 0 {
		event = event.Int("rows_skipped", summary.RowsSkipped)
	}
	event.Msg("Extraction summary")
}

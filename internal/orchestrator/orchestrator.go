package orchestrator

import (
	"context"
	"time"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/aleister1102/faultyurls/internal/datastore"
	"github.com/aleister1102/faultyurls/internal/extractor"
	"github.com/aleister1102/faultyurls/internal/reporter"
	"github.com/aleister1102/faultyurls/internal/rslimiter"
	"github.com/rs/zerolog"
)

// RunResult is what one extraction run produced.
type RunResult struct {
	Summary reporter.Summary
	Outputs []datastore.WriteResult
	// ArchivePath is empty when no archive was written.
	ArchivePath string
}

// ExtractionOrchestrator runs extract -> report -> write (-> archive) over one input file.
type ExtractionOrchestrator struct {
	globalConfig *config.GlobalConfig
	logger       zerolog.Logger
	extractor    *extractor.Extractor
	reporter     *reporter.SummaryReporter
	writer       *datastore.ErrorsFileWriter
	archive      *datastore.ArchiveWriter
	limiter      *rslimiter.ResourceLimiter
	now          func() time.Time
}

// NewExtractionOrchestrator wires the pipeline stages from cfg.
func NewExtractionOrchestrator(cfg *config.GlobalConfig, logger zerolog.Logger) *ExtractionOrchestrator {
	eo := &ExtractionOrchestrator{
		globalConfig: cfg,
		logger:       logger.With().Str("component", "ExtractionOrchestrator").Logger(),
		extractor:    extractor.NewExtractor(logger, cfg.ExtractorConfig),
		reporter:     reporter.NewSummaryReporter(logger),
		writer:       datastore.NewErrorsFileWriter(logger, cfg.OutputConfig.FileExtension),
		limiter:      rslimiter.NewResourceLimiter(cfg.ResourceLimiterConfig, logger),
		now:          time.Now,
	}
	if cfg.ResourceLimiterConfig.Enabled() {
		eo.extractor.SetResourceChecker(eo.limiter, cfg.ResourceLimiterConfig.CheckEveryRows)
	}
	if cfg.ArchiveConfig.Enabled() {
		eo.archive = datastore.NewArchiveWriter(logger, cfg.ArchiveConfig)
	}
	return eo
}

// Execute processes inputPath. Nothing is written unless extraction succeeds.
func (eo *ExtractionOrchestrator) Execute(ctx context.Context, inputPath string) (*RunResult, error) {
	runTime := eo.now()

	if err := checkCancelled(ctx, "extraction"); err != nil {
		return nil, err
	}

	extracted, err := eo.extractor.ExtractFile(ctx, inputPath)
	if err != nil {
		return nil, err
	}

	summary := eo.reporter.Report(extracted.Groups, extracted.RowsRead, extracted.RowsSkipped)

	if err := checkCancelled(ctx, "writing"); err != nil {
		return nil, err
	}

	outputDir := eo.globalConfig.OutputConfig.Directory
	if outputDir == "" {
		outputDir = "."
	}

	outputs, err := eo.writer.WriteAll(extracted.Groups, outputDir, eo.globalConfig.OutputConfig.FilePrefix)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Summary: summary, Outputs: outputs}

	if eo.archive != nil {
		records := datastore.BuildArchiveRecords(extracted.Groups, outputs, inputPath, runTime)
		if err := eo.archive.Write(records); err != nil {
			return nil, err
		}
		result.ArchivePath = eo.globalConfig.ArchiveConfig.Path
	}

	eo.reporter.Log(summary)
	eo.limiter.LogUsage("Resource usage after run")
	eo.logger.Debug().
		Int("files", len(outputs)).
		Dur("duration", time.Since(runTime)).
		Msg("Run complete")

	return result, nil
}

func checkCancelled(ctx context.Context, stage string) error {
	select {
	case <-ctx.Done():
		return common.WrapErrorf(ctx.Err(), "cancelled before %s", stage)
	default:
		return nil
	}
}

// faultyurls extracts the URLs of failed requests from a JMeter CSV log and
// writes them to one file per failure type.
//
// Usage:
//
//	faultyurls -i results.jtl
//	faultyurls -i results.jtl -o ../your/specific/dir -p hostA-
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/aleister1102/faultyurls/internal/logger"
	"github.com/aleister1102/faultyurls/internal/orchestrator"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	var flags AppFlags

	cmd := &cobra.Command{
		Use:           "faultyurls -i <jmeter.csv> [-o <dir>] [-p <prefix>]",
		Short:         "Group the URLs of failed JMeter requests by response code",
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, flags, stderr)
		},
	}
	bindFlags(cmd.Flags(), &flags)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err != nil && exitCodeFor(err) == ExitUsage {
		fmt.Fprintf(stderr, "Error: %v\n%s", err, cmd.UsageString())
	}
	return exitCodeFor(err)
}

func execute(cmd *cobra.Command, flags AppFlags, stderr io.Writer) error {
	bootLog, err := logger.NewLoggerBuilder().
		WithConsoleOutput(stderr).
		WithVerbosity(flags.Verbose).
		Build()
	if err != nil {
		return err
	}
	zLogger := *bootLog.GetZerolog()

	// The input is checked before any config file is read, so a missing -i
	// always reports as such.
	inputPath, err := resolveInput(flags.InputFile, zLogger)
	if err != nil {
		return err
	}

	gCfg, err := loadConfig(flags.ConfigFile, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Could not load configuration")
		return err
	}

	appLog, err := logger.NewLoggerBuilder().
		WithConsoleOutput(stderr).
		WithConfig(gCfg.LogConfig).
		WithVerbosity(flags.Verbose).
		Build()
	if err != nil {
		err = fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
		zLogger.Error().Err(err).Msg("Could not initialize logger")
		return err
	}
	defer appLog.Close()
	zLogger = *appLog.GetZerolog()

	applyOverrides(cmd.Flags(), flags, gCfg)

	if err := resolveOutputDirectory(gCfg, zLogger); err != nil {
		return err
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return err
	}

	_, err = orchestrator.NewExtractionOrchestrator(gCfg, zLogger).Execute(cmd.Context(), inputPath)
	if err != nil {
		zLogger.Error().Err(err).Msg("Extraction failed")
		return err
	}
	return nil
}

func loadConfig(path string, zLogger zerolog.Logger) (*config.GlobalConfig, error) {
	gCfg, err := config.LoadGlobalConfig(path, zLogger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		return nil, err
	}
	return gCfg, nil
}

func resolveInput(path string, zLogger zerolog.Logger) (string, error) {
	if path == "" {
		zLogger.Error().Msg("No input file specified!")
		return "", errNoInputFile
	}

	if _, err := common.NewFileManager(zLogger).ValidateFileForReading(path); err != nil {
		zLogger.Error().Err(err).Msgf("Input file '%s' doesn't exist!", path)
		return "", &inputError{err: err}
	}
	return path, nil
}

// resolveOutputDirectory defaults to the working directory and requires the
// directory to exist. It is never created.
func resolveOutputDirectory(gCfg *config.GlobalConfig, zLogger zerolog.Logger) error {
	if gCfg.OutputConfig.Directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return &outputDirError{err: common.WrapError(err, "failed to get current directory")}
		}
		zLogger.Warn().Msgf("Output directory wasn't specified! Using current directory: '%s' as the output!", cwd)
		gCfg.OutputConfig.Directory = cwd
		return nil
	}

	if _, err := common.NewFileManager(zLogger).ValidateDirectory(gCfg.OutputConfig.Directory); err != nil {
		zLogger.Error().Err(err).Msg("Output directory doesn't exist!")
		return &outputDirError{err: err}
	}
	gCfg.OutputConfig.Directory = filepath.Clean(gCfg.OutputConfig.Directory)
	return nil
}

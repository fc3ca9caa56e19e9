package logger

import (
	"io"
	stdlog "log"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/aleister1102/faultyurls/internal/config"
	"github.com/rs/zerolog"
)

// LoggerBuilder provides fluent interface for building loggers
type LoggerBuilder struct {
	config    LoggerConfig
	verbosity int
	err       error
}

// NewLoggerBuilder creates a builder for a console-only info logger.
func NewLoggerBuilder() *LoggerBuilder {
	return &LoggerBuilder{
		config: DefaultLoggerConfig(),
	}
}

// WithConfig sets the logger configuration from the application config.
// A console output set earlier is kept.
func (lb *LoggerBuilder) WithConfig(cfg config.LogConfig) *LoggerBuilder {
	output := lb.config.ConsoleOutput
	loggerConfig, err := FromLogConfig(cfg)
	if err != nil {
		lb.err = err
	}
	loggerConfig.ConsoleOutput = output
	lb.config = loggerConfig
	return lb
}

// WithVerbosity lowers the level to debug when count is at least one.
func (lb *LoggerBuilder) WithVerbosity(count int) *LoggerBuilder {
	lb.verbosity = count
	return lb
}

// WithConsoleOutput redirects console output, stderr by default.
func (lb *LoggerBuilder) WithConsoleOutput(w io.Writer) *LoggerBuilder {
	lb.config.ConsoleOutput = w
	return lb
}

// Build creates the logger instance
func (lb *LoggerBuilder) Build() (*Logger, error) {
	if lb.err != nil {
		return nil, lb.err
	}

	if lb.verbosity >= 1 && lb.config.Level > zerolog.DebugLevel {
		lb.config.Level = zerolog.DebugLevel
	}

	writers, closers, err := lb.createWriters()
	if err != nil {
		return nil, err
	}

	zerologInstance := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lb.config.Level).
		With().
		Timestamp().
		Logger()

	// Route the standard library logger through zerolog.
	stdlog.SetOutput(zerologInstance)
	stdlog.SetFlags(0)

	return &Logger{
		zerolog: zerologInstance,
		closers: closers,
	}, nil
}

// createWriters always returns the console writer, followed by the
// rotating file writer when a log file is configured.
func (lb *LoggerBuilder) createWriters() ([]io.Writer, []io.Closer, error) {
	factory := NewWriterFactory(lb.config.NoColor)

	writers := []io.Writer{factory.CreateConsoleWriter(lb.config.Format, lb.config.ConsoleOutput)}
	var closers []io.Closer

	if lb.config.EnableFile {
		fileWriter, closer, err := factory.CreateFileWriter(lb.config)
		if err != nil {
			return nil, nil, common.WrapError(err, "failed to create log file writer")
		}
		writers = append(writers, fileWriter)
		closers = append(closers, closer)
	}

	return writers, closers, nil
}

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// LoggerConfig holds configuration for logger setup
type LoggerConfig struct {
	Level         zerolog.Level
	Format        LogFormat
	EnableFile    bool
	FilePath      string
	MaxSizeMB     int
	MaxBackups    int
	NoColor       bool
	// ConsoleOutput overrides the console destination (stderr when nil).
	ConsoleOutput io.Writer
}

// LogFormat represents available log formats
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// ConsoleTimeFormat renders timestamps like "Thu 2013-11-14 15:33:12 +0000".
const ConsoleTimeFormat = "Mon 2006-01-02 15:04:05 -0700"

// DefaultLoggerConfig is console output at info level.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  zerolog.InfoLevel,
		Format: FormatConsole,
	}
}

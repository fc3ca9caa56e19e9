package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger owns a zerolog instance and the files it writes to.
type Logger struct {
	zerolog zerolog.Logger
	closers []io.Closer
}

// GetZerolog returns the underlying zerolog instance
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zerolog
}

// Close releases file writers
func (l *Logger) Close() error {
	var firstErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	l.closers = nil
	return firstErr
}

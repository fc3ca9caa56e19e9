package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// WriterStrategy defines interface for creating log writers
type WriterStrategy interface {
	CreateWriter(output io.Writer) io.Writer
}

// JSONWriterStrategy creates JSON formatted writers
type JSONWriterStrategy struct{}

// CreateWriter creates a JSON writer
func (jws *JSONWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return output
}

// ConsoleWriterStrategy creates console formatted writers
type ConsoleWriterStrategy struct {
	NoColor bool
}

// CreateWriter creates a console writer producing "[time] [LEVEL]: message" lines
func (cws *ConsoleWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return newBracketedConsoleWriter(output, cws.NoColor)
}

// TextWriterStrategy creates text formatted writers
type TextWriterStrategy struct{}

// CreateWriter creates a text writer
func (tws *TextWriterStrategy) CreateWriter(output io.Writer) io.Writer {
	return newBracketedConsoleWriter(output, true)
}

func newBracketedConsoleWriter(output io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:             output,
		NoColor:         noColor,
		TimeFormat:      ConsoleTimeFormat,
		FormatTimestamp: formatBracketedTimestamp,
		FormatLevel:     formatBracketedLevel,
	}
}

func formatBracketedTimestamp(i interface{}) string {
	raw, ok := i.(string)
	if !ok {
		return fmt.Sprintf("[%v]", i)
	}
	ts, err := time.ParseInLocation(zerolog.TimeFieldFormat, raw, time.Local)
	if err != nil {
		return "[" + raw + "]"
	}
	return "[" + ts.Local().Format(ConsoleTimeFormat) + "]"
}

func formatBracketedLevel(i interface{}) string {
	level, ok := i.(string)
	if !ok || level == "" {
		return "[???]:"
	}
	return "[" + strings.ToUpper(level) + "]:"
}

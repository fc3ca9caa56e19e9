package extractor

import (
	"fmt"
	"strings"

	"github.com/aleister1102/faultyurls/internal/common"
)

var (
	// ErrEmptyInput is returned when the input has no header row at all.
	ErrEmptyInput = fmt.Errorf("%w: input has no header row", common.ErrInvalidInput)
	// ErrEmptyResponseCode is returned for rows whose responseCode field is empty.
	ErrEmptyResponseCode = fmt.Errorf("%w: empty responseCode", common.ErrMalformedRow)
	// ErrUnclassifiable is returned for a non-numeric responseCode without a colon.
	ErrUnclassifiable = fmt.Errorf("%w: responseCode is neither numeric nor '<type>: <message>'", common.ErrMalformedRow)
	// ErrShortRow is returned for rows that end before the responseCode or URL column.
	ErrShortRow = fmt.Errorf("%w: row has fewer fields than the resolved columns", common.ErrMalformedRow)
)

// MissingColumnError reports a required column absent from the CSV header.
type MissingColumnError struct {
	Column string
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("CSV header doesn't contain required '%s' column (header: %s)", e.Column, strings.Join(e.Header, ","))
}

func (e *MissingColumnError) Unwrap() error {
	return common.ErrMissingColumn
}

// RowError carries the CSV line a row-level failure was detected on.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row at line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

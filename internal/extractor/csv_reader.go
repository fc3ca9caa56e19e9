package extractor

import (
	"encoding/csv"
	"io"
)

// NewCSVReader returns a reader for JMeter result files. Rows may have any
// number of fields; quoted fields may span lines and contain stray quotes.
func NewCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true
	return reader
}

package models

// ArchiveRecord is one (label, URL) pair of a run as stored in the Parquet archive.
type ArchiveRecord struct {
	Label          string `parquet:"label"`
	SanitizedLabel string `parquet:"sanitized_label"`
	URL            string `parquet:"url"`
	OutputFile     string `parquet:"output_file"`
	SourceFile     string `parquet:"source_file"`
	RunTimestamp   int64  `parquet:"run_timestamp"` // Unix milliseconds
}

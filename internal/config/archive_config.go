package config

// ArchiveConfig defines the optional Parquet archive of a run
type ArchiveConfig struct {
	Path        string `json:"path,omitempty" yaml:"path,omitempty"`
	Compression string `json:"compression,omitempty" yaml:"compression,omitempty" validate:"omitempty,compression"`
}

// Enabled reports whether an archive should be written.
func (ac ArchiveConfig) Enabled() bool {
	return ac.Path != ""
}

// NewDefaultArchiveConfig creates default archive configuration
func NewDefaultArchiveConfig() ArchiveConfig {
	return ArchiveConfig{
		Path:        "",
		Compression: DefaultArchiveCompression,
	}
}

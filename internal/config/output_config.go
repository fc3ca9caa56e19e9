package config

// OutputConfig defines where and how the per-label URL files are written
type OutputConfig struct {
	// Directory must already exist; empty means the current working directory.
	Directory     string `json:"directory,omitempty" yaml:"directory,omitempty"`
	FilePrefix    string `json:"file_prefix,omitempty" yaml:"file_prefix,omitempty"`
	FileExtension string `json:"file_extension,omitempty" yaml:"file_extension,omitempty" validate:"omitempty,extension"`
}

// NewDefaultOutputConfig creates default output configuration
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Directory:     "",
		FilePrefix:    "",
		FileExtension: DefaultOutputFileExtension,
	}
}

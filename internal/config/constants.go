package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Output Defaults
	DefaultOutputFileExtension = ".errors"

	// Archive Defaults
	DefaultArchiveCompression = "zstd"

	// Resource Limiter Defaults
	DefaultResourceCheckEveryRows = 10000

	// ConfigPathEnvVar names the environment variable consulted when no -config flag is given.
	ConfigPathEnvVar = "FAULTYURLS_CONFIG"
)

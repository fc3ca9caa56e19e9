package config

// ExtractorConfig controls how CSV rows are turned into error groups.
type ExtractorConfig struct {
	// Strict aborts the run on the first malformed row instead of skipping it.
	Strict bool `json:"strict" yaml:"strict"`
	// NormalizeURLs canonicalizes URLs before de-duplication.
	NormalizeURLs bool `json:"normalize_urls" yaml:"normalize_urls"`
	// StripTrackingParams drops utm_* and click identifiers while normalizing.
	StripTrackingParams bool `json:"strip_tracking_params" yaml:"strip_tracking_params"`
	// StripParams lists further query parameters dropped while normalizing.
	StripParams []string `json:"strip_params,omitempty" yaml:"strip_params,omitempty"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Strict:        false,
		NormalizeURLs: false,
	}
}

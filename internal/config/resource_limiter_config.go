package config

// ResourceLimiterConfig bounds the memory an extraction run may use.
// Zero values disable the corresponding check.
type ResourceLimiterConfig struct {
	MaxMemoryMB        int64   `json:"max_memory_mb,omitempty" yaml:"max_memory_mb,omitempty" validate:"min=0"`
	SystemMemThreshold float64 `json:"system_mem_threshold,omitempty" yaml:"system_mem_threshold,omitempty" validate:"min=0,max=1"`
	CheckEveryRows     int     `json:"check_every_rows,omitempty" yaml:"check_every_rows,omitempty" validate:"min=0"`
}

// Enabled reports whether any limit is configured.
func (rc ResourceLimiterConfig) Enabled() bool {
	return rc.MaxMemoryMB > 0 || rc.SystemMemThreshold > 0
}

// NewDefaultResourceLimiterConfig creates default resource limiter configuration
func NewDefaultResourceLimiterConfig() ResourceLimiterConfig {
	return ResourceLimiterConfig{
		MaxMemoryMB:        0,
		SystemMemThreshold: 0,
		CheckEveryRows:     DefaultResourceCheckEveryRows,
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aleister1102/faultyurls/internal/common"
	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "configuration is nil")
	}

	validate := validator.New()

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "debug", "info", "warn", "error", "fatal", "panic":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "text", "json":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("compression", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "zstd", "snappy", "gzip", "none":
			return true
		default:
			return false
		}
	})

	// An output extension is a leading dot followed by a plain file-name fragment.
	_ = validate.RegisterValidation("extension", func(fl validator.FieldLevel) bool {
		ext := fl.Field().String()
		if ext == "" {
			return true
		}
		return len(ext) > 1 && strings.HasPrefix(ext, ".") && !strings.ContainsAny(ext, `/\`)
	})

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return common.WrapError(err, "configuration validation error")
	}

	var collector common.ErrorCollector
	for _, e := range errs {
		reason := fmt.Sprintf("rule '%s'", e.Tag())
		if e.Param() != "" {
			reason += fmt.Sprintf(" (expected: %s)", e.Param())
		}
		if e.Value() != nil && e.Value() != "" {
			reason += fmt.Sprintf(", actual: '%v'", e.Value())
		}
		collector.Add(common.NewConfigurationError(sectionOf(e.Namespace()), e.Field(), reason))
	}
	return common.WrapError(collector.Error(), "configuration validation failed")
}

// sectionOf turns "GlobalConfig.LogConfig.LogLevel" into "LogConfig".
func sectionOf(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[1]
}

package urlhandler

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// URLNormalizationConfig selects which query parameters are dropped.
// Query strings are otherwise kept: for failed requests the parameters are
// usually part of what went wrong.
type URLNormalizationConfig struct {
	// StripTrackingParams drops utm_* and the usual click identifiers.
	StripTrackingParams bool
	// StripParams names extra parameters to drop, case-insensitively.
	StripParams []string
}

var trackingParams = []string{
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"fbclid", "gclid", "msclkid", "_ga", "_gl", "mc_cid", "mc_eid",
}

// URLNormalizer canonicalizes URLs so trivially different spellings of the
// same request collapse into one entry.
type URLNormalizer struct {
	dropped map[string]struct{}
}

func NewURLNormalizer(cfg URLNormalizationConfig) *URLNormalizer {
	dropped := make(map[string]struct{}, len(cfg.StripParams))
	if cfg.StripTrackingParams {
		for _, name := range trackingParams {
			dropped[name] = struct{}{}
		}
	}
	for _, name := range cfg.StripParams {
		dropped[strings.ToLower(name)] = struct{}{}
	}
	return &URLNormalizer{dropped: dropped}
}

// NormalizeURL trims rawURL, assumes http when no scheme is given,
// lower-cases scheme and host, drops the fragment and the configured
// query parameters.
func (un *URLNormalizer) NormalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", errors.New("URL is empty or only whitespace")
	}
	if !strings.Contains(trimmed, "://") && !strings.HasPrefix(trimmed, "//") {
		trimmed = "http://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("could not parse URL '%s': %w", trimmed, err)
	}
	if u.Host == "" {
		return "", errors.New("URL lacks a valid hostname")
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.RawFragment = ""

	if len(un.dropped) > 0 && u.RawQuery != "" {
		un.dropParams(u)
	}
	return u.String(), nil
}

// dropParams re-encodes the query only when something was removed, so an
// untouched query keeps its original order and escaping.
func (un *URLNormalizer) dropParams(u *url.URL) {
	values := u.Query()
	removed := false
	for name := range values {
		if _, ok := un.dropped[strings.ToLower(name)]; ok {
			values.Del(name)
			removed = true
		}
	}
	if removed {
		u.RawQuery = values.Encode()
	}
}

package domain

import (
	"fmt"
	"math"
	"net/url"
)

// DefaultDictionaryBaseURL is the public Free Dictionary API endpoint for English.
const DefaultDictionaryBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// DictionarySettings configures the dictionary lookup service.
type DictionarySettings struct {
	// BaseURL is prefixed to "/<word>" for every lookup.
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// RateLimit is the maximum number of requests per second.
	// Zero means unlimited.
	RateLimit float64
}

// Validate checks the settings for obvious mistakes.
func (d DictionarySettings) Validate() error {
	if err := ValidateBaseURL(d.BaseURL); err != nil {
		return err
	}
	return ValidateRateLimit(d.RateLimit)
}

// ValidateBaseURL requires an absolute http or https URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidInput)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: base URL must be an http or https URL", ErrInvalidInput)
	}
	return nil
}

// ValidateRateLimit requires a finite, non-negative number of requests per second.
func ValidateRateLimit(limit float64) error {
	if math.IsNaN(limit) || math.IsInf(limit, 0) {
		return fmt.Errorf("%w: rate limit must be a finite number", ErrInvalidInput)
	}
	if limit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidInput)
	}
	return nil
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Dictionary holds dictionary service settings.
	Dictionary DictionarySettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Dictionary: DictionarySettings{
			BaseURL:   DefaultDictionaryBaseURL,
			UserAgent: "lexi",
			RateLimit: 0,
		},
	}
}

package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyDictionaryBaseURL   = "dictionary.base_url"
	KeyDictionaryUserAgent = "dictionary.user_agent"
	KeyDictionaryRateLimit = "dictionary.rate_limit"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	defaults    domain.AppSettings
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		defaults:    domain.DefaultAppSettings(),
	}
}

// WithUserAgent overrides the default user agent (typically "lexi/<version>").
func (s *SettingsService) WithUserAgent(ua string) *SettingsService {
	if ua != "" {
		s.defaults.Dictionary.UserAgent = ua
	}
	return s
}

// Get retrieves current application settings.
// Missing or unusable stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := &domain.AppSettings{
		Dictionary: domain.DictionarySettings{
			BaseURL:   s.getBaseURL(),
			UserAgent: s.getString(KeyDictionaryUserAgent, s.defaults.Dictionary.UserAgent),
			RateLimit: s.getRateLimit(),
		},
	}
	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are nil", domain.ErrInvalidInput)
	}
	if err := settings.Dictionary.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyDictionaryBaseURL, settings.Dictionary.BaseURL); err != nil {
		return fmt.Errorf("save dictionary base_url: %w", err)
	}
	if err := s.configStore.Set(KeyDictionaryUserAgent, settings.Dictionary.UserAgent); err != nil {
		return fmt.Errorf("save dictionary user_agent: %w", err)
	}
	if err := s.configStore.Set(KeyDictionaryRateLimit, settings.Dictionary.RateLimit); err != nil {
		return fmt.Errorf("save dictionary rate_limit: %w", err)
	}
	return nil
}

// Set updates a single setting by key after validating it.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyDictionaryBaseURL:
		settings.Dictionary.BaseURL = value
	case KeyDictionaryUserAgent:
		settings.Dictionary.UserAgent = value
	case KeyDictionaryRateLimit:
		limit, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: rate limit %q is not a number", domain.ErrInvalidInput, value)
		}
		settings.Dictionary.RateLimit = limit
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := settings.Dictionary.Validate(); err != nil {
		return err
	}
	return s.configStore.Set(key, valueFor(key, settings))
}

// Keys returns the configuration keys accepted by Set.
func (s *SettingsService) Keys() []string {
	return []string{KeyDictionaryBaseURL, KeyDictionaryUserAgent, KeyDictionaryRateLimit}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return s.defaults
}

func valueFor(key string, settings *domain.AppSettings) any {
	switch key {
	case KeyDictionaryBaseURL:
		return settings.Dictionary.BaseURL
	case KeyDictionaryUserAgent:
		return settings.Dictionary.UserAgent
	default:
		return settings.Dictionary.RateLimit
	}
}

func (s *SettingsService) getString(key, def string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return def
}

func (s *SettingsService) getBaseURL() string {
	v := s.configStore.GetString(KeyDictionaryBaseURL)
	if v == "" {
		return s.defaults.Dictionary.BaseURL
	}
	if err := domain.ValidateBaseURL(v); err != nil {
		logger.Warn("Ignoring stored %s %q: %v", KeyDictionaryBaseURL, v, err)
		return s.defaults.Dictionary.BaseURL
	}
	return v
}

func (s *SettingsService) getRateLimit() float64 {
	if _, ok := s.configStore.Get(KeyDictionaryRateLimit); !ok {
		return s.defaults.Dictionary.RateLimit
	}
	limit := s.configStore.GetFloat(KeyDictionaryRateLimit)
	if err := domain.ValidateRateLimit(limit); err != nil {
		logger.Warn("Ignoring stored %s %v: %v", KeyDictionaryRateLimit, limit, err)
		return s.defaults.Dictionary.RateLimit
	}
	return limit
}

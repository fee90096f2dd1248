package mcp

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/core/services"
)

// mockLookupService answers "test" with an entry, "errorTest" as unknown and
// "fetchErrorTest" as a transport failure. Words in entries get that entry.
type mockLookupService struct {
	mu      sync.Mutex
	words   []string
	entries map[string]*domain.DictionaryEntry
}

func (m *mockLookupService) Lookup(_ context.Context, word string) (*domain.DictionaryEntry, error) {
	m.mu.Lock()
	m.words = append(m.words, word)
	m.mu.Unlock()

	if e, ok := m.entries[word]; ok {
		return e, nil
	}

	switch word {
	case "errorTest":
		return nil, domain.ErrWordNotAvailable
	case "fetchErrorTest":
		return nil, errors.Join(domain.ErrTransport, errors.New("connection refused"))
	default:
		return &domain.DictionaryEntry{
			Word:      word,
			Phonetics: []domain.Phonetic{{Text: "/tɛst/"}},
			Meanings: []domain.Meaning{{
				PartOfSpeech: "noun",
				Definitions:  []domain.Definition{{Definition: "A challenge, trial."}},
			}},
		}, nil
	}
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) { return m.settings, m.err }

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }

func (m *mockSettingsService) Set(string, string) error { return nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func newTestPorts(lookup *mockLookupService) *Ports {
	return &Ports{
		NewController: func() driving.LookupController {
			return services.NewController(lookup)
		},
	}
}

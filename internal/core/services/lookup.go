package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// Ensure LookupService implements the interface.
var _ driving.LookupService = (*LookupService)(nil)

// LookupService resolves a word to its first dictionary entry.
type LookupService struct {
	client driven.DictionaryClient
}

// NewLookupService creates a new lookup service.
func NewLookupService(client driven.DictionaryClient) *LookupService {
	return &LookupService{client: client}
}

// Lookup performs exactly one request for word. The word is passed through
// untrimmed. Every failure is reported as either domain.ErrWordNotAvailable
// or domain.ErrTransport.
func (s *LookupService) Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	logger.Section("Lookup")
	logger.Debug("Word: %q", word)
	defer logger.Since("lookup", time.Now())

	if s.client == nil {
		return nil, fmt.Errorf("%w: dictionary client not configured", domain.ErrTransport)
	}

	entries, err := s.client.Lookup(ctx, word)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWordNotAvailable):
			logger.Info("Word not available: %v", err)
			return nil, err
		case errors.Is(err, domain.ErrTransport):
			logger.Warn("Transport failure: %v", err)
			return nil, err
		default:
			logger.Warn("Unclassified lookup failure: %v", err)
			return nil, fmt.Errorf("%w: %w", domain.ErrTransport, err)
		}
	}

	if len(entries) == 0 {
		logger.Info("Service returned no entries for %q", word)
		return nil, fmt.Errorf("lookup %q: %w: %w", word, domain.ErrWordNotAvailable, domain.ErrNoEntries)
	}

	logger.Debug("Entries: %d, using first (%q, %d definitions)",
		len(entries), entries[0].Word, entries[0].DefinitionCount())
	entry := entries[0]
	return &entry, nil
}

// StateFor maps a lookup result onto the settled state shown to the user.
func StateFor(entry *domain.DictionaryEntry, err error) domain.LookupState {
	switch {
	case err == nil && entry != nil:
		return domain.SuccessState(*entry)
	case err == nil:
		return domain.ErrorState(domain.OutcomeServiceError)
	case errors.Is(err, domain.ErrWordNotAvailable):
		return domain.ErrorState(domain.OutcomeServiceError)
	default:
		return domain.ErrorState(domain.OutcomeTransportError)
	}
}

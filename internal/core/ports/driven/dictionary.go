package driven

import (
	"context"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// DictionaryClient fetches dictionary entries for a word from an external service.
type DictionaryClient interface {
	// Lookup issues exactly one request for word and decodes the entry list.
	// A non-success response yields an error wrapping domain.ErrWordNotAvailable.
	// A failed exchange or undecodable body yields an error wrapping domain.ErrTransport.
	Lookup(ctx context.Context, word string) ([]domain.DictionaryEntry, error)
}

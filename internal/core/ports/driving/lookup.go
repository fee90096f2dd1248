package driving

import (
	"context"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// LookupService fetches a single dictionary entry for a word.
type LookupService interface {
	// Lookup returns the first entry the dictionary service reports for word.
	// Errors wrap domain.ErrWordNotAvailable or domain.ErrTransport.
	Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error)
}

// LookupController owns the query text and the settled lookup state.
//
// Search runs the whole transition in one call. Begin, Run and Settle split
// it at the network call so an event loop can keep state changes on its own
// goroutine: Begin and Settle mutate state, Run does not.
type LookupController interface {
	// SetQuery replaces the query text. It never fails.
	SetQuery(text string)

	// Query returns the current query text.
	Query() string

	// State returns the last settled lookup state.
	State() domain.LookupState

	// Search clears the state, validates the query, performs the lookup
	// and returns the settled state.
	Search(ctx context.Context) domain.LookupState

	// Begin clears the state and validates the query. It returns false when
	// validation failed, in which case the state already holds the error and
	// no lookup must be run.
	Begin() (domain.LookupTicket, bool)

	// Run performs the lookup for ticket without touching controller state.
	Run(ctx context.Context, ticket domain.LookupTicket) domain.LookupResult

	// Settle applies result if it belongs to the most recent Begin.
	// Stale results are discarded and Settle returns false.
	Settle(result domain.LookupResult) bool
}

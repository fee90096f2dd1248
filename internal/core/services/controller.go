package services

import (
	"context"
	"strings"
	"sync"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
	"github.com/custodia-labs/lexi-cli/internal/logger"
)

// Ensure Controller implements the interface.
var _ driving.LookupController = (*Controller)(nil)

// Controller owns the query text and the settled lookup state.
// Every Begin issues a new token; only the result carrying the latest
// token is applied, so an older lookup that finishes late cannot
// overwrite a newer one.
type Controller struct {
	lookup driving.LookupService

	mu     sync.Mutex
	query  string
	state  domain.LookupState
	latest uint64
}

// NewController creates a controller backed by lookup.
func NewController(lookup driving.LookupService) *Controller {
	return &Controller{
		lookup: lookup,
		state:  domain.IdleState(),
	}
}

// SetQuery replaces the query text.
func (c *Controller) SetQuery(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = text
}

// Query returns the current query text.
func (c *Controller) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// State returns the last settled state.
func (c *Controller) State() domain.LookupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Search runs Begin, Run and Settle in sequence and returns the state
// afterwards. If a newer Begin happened while this lookup was in flight,
// the returned state is whatever the controller holds at that point.
func (c *Controller) Search(ctx context.Context) domain.LookupState {
	ticket, ok := c.Begin()
	if !ok {
		return c.State()
	}
	c.Settle(c.Run(ctx, ticket))
	return c.State()
}

// Begin clears the previous outcome and validates the query.
func (c *Controller) Begin() (domain.LookupTicket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.IdleState()
	c.latest++
	ticket := domain.LookupTicket{Token: c.latest, Word: c.query}

	if strings.TrimSpace(c.query) == "" {
		logger.Debug("Lookup %d rejected: empty query", ticket.Token)
		c.state = domain.ErrorState(domain.OutcomeValidationError)
		return ticket, false
	}
	return ticket, true
}

// Run performs the lookup for ticket. It does not touch controller state
// and may be called from any goroutine.
func (c *Controller) Run(ctx context.Context, ticket domain.LookupTicket) domain.LookupResult {
	if c.lookup == nil {
		return domain.LookupResult{Token: ticket.Token, State: domain.ErrorState(domain.OutcomeTransportError)}
	}
	entry, err := c.lookup.Lookup(ctx, ticket.Word)
	return domain.LookupResult{Token: ticket.Token, State: StateFor(entry, err)}
}

// Settle applies result if its token is the latest issued.
func (c *Controller) Settle(result domain.LookupResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if result.Token != c.latest {
		logger.Debug("Lookup %d discarded: superseded by %d", result.Token, c.latest)
		return false
	}
	c.state = result.State
	logger.Debug("Lookup %d settled: %s", result.Token, result.State.Outcome())
	return true
}

// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// QueryChanged is sent when the query input changes.
type QueryChanged struct {
	Query string
}

// LookupStarted is sent when a lookup has been issued for a ticket.
type LookupStarted struct {
	Ticket domain.LookupTicket
}

// LookupSettled carries a finished lookup back to the model.
// It may be stale; the controller decides whether it applies.
type LookupSettled struct {
	Result domain.LookupResult
}

// ActionCompleted reports the outcome of an entry action.
type ActionCompleted struct {
	Action string
	Err    error
}

// ConfigReloaded is sent after the configuration file changed on disk.
type ConfigReloaded struct {
	Err error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewLookup is the query input and entry view.
	ViewLookup ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLookup:
		return "lookup"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

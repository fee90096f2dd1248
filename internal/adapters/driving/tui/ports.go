// Package tui provides an interactive terminal user interface for lexi.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup owns the query and the settled lookup state.
	Lookup driving.LookupController

	// Actions provides copy and pronunciation actions on an entry. Optional.
	Actions driving.EntryActionService

	// Settings exposes the dictionary settings shown in the help view. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	lookup driving.LookupController,
	actions driving.EntryActionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Lookup:   lookup,
		Actions:  actions,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Lookup == nil {
		return ErrMissingLookupController
	}
	return nil
}

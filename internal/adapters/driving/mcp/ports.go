package mcp

import (
	"github.com/custodia-labs/lexi-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// NewController creates a fresh lookup controller. Each tool call gets
	// its own so concurrent calls never share query or state.
	NewController func() driving.LookupController

	// Settings exposes the dictionary settings resource. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.NewController == nil {
		return ErrMissingControllerFactory
	}
	return nil
}

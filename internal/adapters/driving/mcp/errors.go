// Package mcp provides an MCP (Model Context Protocol) server adapter for lexi.
// It lets AI assistants look up words through the same controller the TUI uses.
package mcp

import "errors"

// ErrMissingControllerFactory is returned when no controller factory is provided.
var ErrMissingControllerFactory = errors.New("mcp: lookup controller factory is required")

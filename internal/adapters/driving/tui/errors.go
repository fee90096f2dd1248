package tui

import "errors"

// ErrMissingLookupController is returned when the lookup controller is not provided.
var ErrMissingLookupController = errors.New("tui: lookup controller is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")

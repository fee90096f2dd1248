package lookup

import "errors"

// Error definitions for the lookup view.
var (
	// ErrNoController indicates that no lookup controller was provided.
	ErrNoController = errors.New("lookup controller is required")
)

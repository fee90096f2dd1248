package freedict

import (
	"fmt"
	"net/http"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// StatusError is returned when the service answers with a non-success status.
// It unwraps to domain.ErrWordNotAvailable whatever the code.
type StatusError struct {
	Code int
	Word string
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("freedict: %q: unexpected status %d %s", e.Word, e.Code, http.StatusText(e.Code))
}

// Unwrap returns domain.ErrWordNotAvailable.
func (e *StatusError) Unwrap() error {
	return domain.ErrWordNotAvailable
}

// NotFound reports whether the service said it has no entry for the word.
func (e *StatusError) NotFound() bool {
	return e.Code == http.StatusNotFound
}

// transportError wraps err so it matches domain.ErrTransport while keeping the cause.
func transportError(op string, err error) error {
	return fmt.Errorf("freedict: %s: %w: %w", op, domain.ErrTransport, err)
}

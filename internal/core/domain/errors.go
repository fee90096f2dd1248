package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates the query is empty after trimming whitespace.
	ErrEmptyQuery = errors.New("empty query")

	// Dictionary Errors.

	// ErrWordNotAvailable indicates the dictionary service answered with a
	// non-success status. The specific status code is not distinguished.
	ErrWordNotAvailable = errors.New("word not available")

	// ErrTransport indicates the request could not be performed or its
	// response could not be decoded.
	ErrTransport = errors.New("transport failure")

	// ErrNoEntries indicates the service answered successfully with an empty list.
	ErrNoEntries = errors.New("no entries returned")
)

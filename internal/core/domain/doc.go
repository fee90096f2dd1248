// Package domain defines the core entities for lexi.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DictionaryEntry: One dictionary result for a word
//   - Phonetic, Meaning, Definition: The nested parts of an entry
//   - LookupState: The settled outcome of a lookup
//   - AppSettings: Dictionary service configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DictionaryClient: Fetches entries from the dictionary service
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ConfigWatcher: Notifies when configuration changes on disk
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven

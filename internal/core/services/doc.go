// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate
// calls to driven ports (adapters).
//
// Services depend on driven ports and the logger. Entry actions also
// reach the system clipboard and URL opener.
package services

// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Selection never mutates the loaded databases: every returned question
// is an independent copy carrying its own provenance fields.
package services

// Package tui provides an interactive terminal user interface for leetgen.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Generator lists and describes databases.
	Generator driving.GeneratorService

	// Session draws and renders questions.
	Session driving.SessionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	return nil
}

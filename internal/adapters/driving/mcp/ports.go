package mcp

import (
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Generator lists, describes and selects questions.
	Generator driving.GeneratorService

	// Session renders questions and records history. Optional; without it
	// generate_questions returns records only.
	Session driving.SessionService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Generator == nil {
		return ErrMissingGeneratorService
	}
	return nil
}

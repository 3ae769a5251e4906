// Package mcp provides an MCP (Model Context Protocol) server adapter for leetgen.
// It lets AI assistants list question databases and draw practice questions.
package mcp

import "errors"

// ErrMissingGeneratorService is returned when the generator service is not provided.
var ErrMissingGeneratorService = errors.New("mcp: generator service is required")

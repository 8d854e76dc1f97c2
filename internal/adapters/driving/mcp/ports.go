package mcp

import (
	"github.com/structura-labs/layerlint-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Check runs layering checks.
	Check driving.CheckService

	// History provides access to recorded runs.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Check == nil {
		return ErrMissingCheckService
	}
	// History is optional; the run resources degrade gracefully.
	return nil
}

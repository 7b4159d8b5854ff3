// Package mcp exposes the astroview services as Model Context Protocol
// tools, so AI assistants can search missions and media directly.
package mcp

import (
	"github.com/astroview-labs/astroview-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Explore is the search orchestrator.
	Explore driving.ExploreService

	// Apod fetches picture-of-the-day entries.
	Apod driving.ApodService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Explore == nil {
		return ErrMissingExploreService
	}
	// Apod is optional; its tools report unavailability
	return nil
}

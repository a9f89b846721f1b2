package mcp

import (
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Diff computes differences between two images.
	Diff driving.DiffService

	// Images loads the image files named in tool calls.
	Images driven.ImageLoader

	// Game manages stored games. Optional; game tools and resources
	// report it missing when nil.
	Game driving.GameService

	// Settings supplies the default radius. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Diff == nil {
		return ErrMissingDiffService
	}
	if p.Images == nil {
		return ErrMissingImageLoader
	}
	return nil
}

package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// FindDifferencesInput is the input schema for the find_differences tool.
type FindDifferencesInput struct {
	Original string `json:"original" jsonschema:"path of the original image"`
	Modified string `json:"modified" jsonschema:"path of the modified image"`
	Radius   *int   `json:"radius,omitempty" jsonschema:"dilation radius in pixels, negative or absent uses the default from settings"`
}

// FindDifferencesOutput is the output schema for the find_differences tool.
type FindDifferencesOutput struct {
	Differences []domain.Difference `json:"differences"`
	Difficulty  domain.Difficulty   `json:"difficulty"`
	Count       int                 `json:"count"`
	Width       int                 `json:"width"`
	Height      int                 `json:"height"`
	Coverage    float64             `json:"coverage"`
}

// CreateGameInput is the input schema for the create_game tool.
type CreateGameInput struct {
	Name     string `json:"name" jsonschema:"title of the new game"`
	Original string `json:"original" jsonschema:"path of the original image"`
	Modified string `json:"modified" jsonschema:"path of the modified image"`
	Radius   *int   `json:"radius,omitempty" jsonschema:"dilation radius, one of the allowed radii (default from settings)"`
}

// CreateGameOutput is the output schema for the create_game tool.
type CreateGameOutput struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Radius          int               `json:"radius"`
	DifferenceCount int               `json:"difference_count"`
	Difficulty      domain.Difficulty `json:"difficulty"`
	CreatedAt       string            `json:"created_at"`
}

// CheckClickInput is the input schema for the check_click tool.
type CheckClickInput struct {
	GameID string `json:"game_id" jsonschema:"ID of the game"`
	X      int    `json:"x" jsonschema:"click column, 0 at the left edge"`
	Y      int    `json:"y" jsonschema:"click row, 0 at the top edge"`
	Found  []int  `json:"found,omitempty" jsonschema:"indexes of differences the player already found"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_differences",
		Description: "Compute the differing regions of two same-size images as rectangle sets",
	}, s.handleFindDifferences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "create_game",
		Description: "Create and store a spot-the-difference game from two images",
	}, s.handleCreateGame)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_click",
		Description: "Check whether a click hits a difference of a stored game that is not yet found",
	}, s.handleCheckClick)
}

// handleFindDifferences handles the find_differences tool invocation.
func (s *Server) handleFindDifferences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindDifferencesInput,
) (*mcp.CallToolResult, FindDifferencesOutput, error) {
	original, err := s.ports.Images.Load(input.Original)
	if err != nil {
		return nil, FindDifferencesOutput{}, err
	}
	modified, err := s.ports.Images.Load(input.Modified)
	if err != nil {
		return nil, FindDifferencesOutput{}, err
	}

	radius := s.radius(input.Radius)
	res, err := s.ports.Diff.Find(ctx, original, modified, radius)
	if err != nil {
		return nil, FindDifferencesOutput{}, err
	}

	differences := res.Differences
	if differences == nil {
		differences = []domain.Difference{}
	}
	return nil, FindDifferencesOutput{
		Differences: differences,
		Difficulty:  res.Difficulty,
		Count:       len(differences),
		Width:       res.Width,
		Height:      res.Height,
		Coverage:    res.Coverage(),
	}, nil
}

// handleCreateGame handles the create_game tool invocation.
func (s *Server) handleCreateGame(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateGameInput,
) (*mcp.CallToolResult, CreateGameOutput, error) {
	if s.ports.Game == nil {
		return nil, CreateGameOutput{}, ErrMissingGameService
	}
	original, err := s.ports.Images.Load(input.Original)
	if err != nil {
		return nil, CreateGameOutput{}, err
	}
	modified, err := s.ports.Images.Load(input.Modified)
	if err != nil {
		return nil, CreateGameOutput{}, err
	}

	radius := -1
	if input.Radius != nil {
		radius = *input.Radius
	}
	game, err := s.ports.Game.Create(ctx, domain.GameDraft{
		Name:     input.Name,
		Original: original,
		Modified: modified,
		Radius:   radius,
	})
	if err != nil {
		return nil, CreateGameOutput{}, err
	}

	summary := game.Summary()
	return nil, CreateGameOutput{
		ID:              summary.ID,
		Name:            summary.Name,
		Radius:          summary.Radius,
		DifferenceCount: summary.DifferenceCount,
		Difficulty:      summary.Difficulty,
		CreatedAt:       summary.CreatedAt.Format(time.RFC3339),
	}, nil
}

// handleCheckClick handles the check_click tool invocation.
func (s *Server) handleCheckClick(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckClickInput,
) (*mcp.CallToolResult, domain.CheckResult, error) {
	if s.ports.Game == nil {
		return nil, domain.CheckResult{Index: -1}, ErrMissingGameService
	}
	res, err := s.ports.Game.Check(ctx, input.GameID, domain.Point{X: input.X, Y: input.Y}, input.Found)
	if err != nil {
		return nil, domain.CheckResult{Index: -1}, err
	}
	return nil, res, nil
}

// radius resolves an optional radius against the configured default.
// radius resolves a requested radius. Absent or negative means the default.
func (s *Server) radius(r *int) int {
	if r != nil && *r >= 0 {
		return *r
	}
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			return settings.Game.DefaultRadius
		}
	}
	return domain.DefaultAppSettings().Game.DefaultRadius
}

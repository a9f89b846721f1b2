package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// uriScheme is the custom URI scheme for polydiff resources.
const uriScheme = "polydiff://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "games",
		Name:        "games",
		Description: "Summaries of all stored games, newest first",
		MIMEType:    "application/json",
	}, s.handleGamesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "games/{gameId}",
		Name:        "game",
		Description: "A stored game with its full answer key",
		MIMEType:    "application/json",
	}, s.handleGameResource)
}

// handleGamesResource returns summaries of all games.
func (s *Server) handleGamesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Game == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	games, err := s.ports.Game.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing games: %w", err)
	}

	data, err := json.MarshalIndent(games, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling games: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// handleGameResource returns one game by ID.
func (s *Server) handleGameResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Game == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	id := extractGameID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	game, err := s.ports.Game.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting game: %w", err)
	}

	data, err := json.MarshalIndent(game, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling game: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractGameID extracts the game ID from a URI like polydiff://games/{gameId}.
func extractGameID(uri string) string {
	const prefix = uriScheme + "games/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}

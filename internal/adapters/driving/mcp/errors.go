// Package mcp provides an MCP (Model Context Protocol) server adapter for polydiff.
// It lets AI assistants compute image differences, create games and
// validate clicks against stored answer keys.
package mcp

import "errors"

// ErrMissingDiffService is returned when the diff service is not provided.
var ErrMissingDiffService = errors.New("mcp: diff service is required")

// ErrMissingImageLoader is returned when the image loader is not provided.
var ErrMissingImageLoader = errors.New("mcp: image loader is required")

// ErrMissingGameService is returned by game tools when no game service is configured.
var ErrMissingGameService = errors.New("mcp: game service not configured")

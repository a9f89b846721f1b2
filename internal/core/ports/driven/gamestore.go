package driven

import (
	"context"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// GameStore persists games.
type GameStore interface {
	// Save stores or updates a game.
	Save(ctx context.Context, game *domain.Game) error

	// Get retrieves a game by ID.
	// Returns domain.ErrNotFound when no game has that ID.
	Get(ctx context.Context, id string) (*domain.Game, error)

	// List returns all games, newest first.
	List(ctx context.Context) ([]*domain.Game, error)

	// Delete removes a game.
	// Returns domain.ErrNotFound when no game has that ID.
	Delete(ctx context.Context, id string) error
}

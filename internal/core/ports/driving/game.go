package driving

import (
	"context"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// GameService manages spot-the-difference games.
type GameService interface {
	// Create validates a draft, computes its differences and persists the
	// resulting game.
	Create(ctx context.Context, draft domain.GameDraft) (*domain.Game, error)

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*domain.Game, error)

	// List returns summaries of all games, newest first.
	List(ctx context.Context) ([]domain.GameSummary, error)

	// Delete removes a game.
	Delete(ctx context.Context, id string) error

	// Check validates a player's click against the differences of a game
	// that are not in found.
	Check(ctx context.Context, id string, click domain.Point, found []int) (domain.CheckResult, error)
}

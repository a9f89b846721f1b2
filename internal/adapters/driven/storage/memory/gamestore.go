package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
)

// Ensure GameStore implements the interface.
var _ driven.GameStore = (*GameStore)(nil)

// GameStore is an in-memory implementation of driven.GameStore.
// Games are cloned on the way in and out so callers cannot alias
// stored answer keys.
type GameStore struct {
	mu    sync.RWMutex
	games map[string]*domain.Game
}

// NewGameStore creates a new in-memory game store.
func NewGameStore() *GameStore {
	return &GameStore{
		games: make(map[string]*domain.Game),
	}
}

// Save stores or replaces a game.
func (s *GameStore) Save(_ context.Context, game *domain.Game) error {
	if game == nil || game.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game.Clone()
	return nil
}

// Get retrieves a game by ID.
func (s *GameStore) Get(_ context.Context, id string) (*domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return game.Clone(), nil
}

// List returns all games, newest first.
func (s *GameStore) List(_ context.Context) ([]*domain.Game, error) {
	s.mu.RLock()
	result := make([]*domain.Game, 0, len(s.games))
	for _, game := range s.games {
		result = append(result, game.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Delete removes a game.
func (s *GameStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.games, id)
	return nil
}

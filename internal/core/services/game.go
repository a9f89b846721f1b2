package services

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driving"
	"github.com/sucyhan/polydiff-2023-sub000/internal/logger"
)

// Ensure GameService implements the interface.
var _ driving.GameService = (*GameService)(nil)

// GameService implements the game creation workflow and click validation.
type GameService struct {
	store    driven.GameStore
	diff     driving.DiffService
	settings driving.SettingsService
	now      func() time.Time
}

// NewGameService creates a new game service.
func NewGameService(
	store driven.GameStore,
	diff driving.DiffService,
	settings driving.SettingsService,
) *GameService {
	return &GameService{
		store:    store,
		diff:     diff,
		settings: settings,
		now:      time.Now,
	}
}

// Create validates a draft, computes its differences and persists the game.
func (s *GameService) Create(ctx context.Context, draft domain.GameDraft) (*domain.Game, error) {
	logger.Section("Create game")
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: game name is required", domain.ErrInvalidInput)
	}
	if draft.Original == nil || draft.Modified == nil {
		return nil, fmt.Errorf("%w: both images are required", domain.ErrInvalidInput)
	}

	settings, err := s.currentSettings()
	if err != nil {
		return nil, err
	}

	radius := draft.Radius
	if radius < 0 {
		radius = settings.Game.DefaultRadius
		logger.Debug("Using default radius %d", radius)
	}
	if !settings.Game.RadiusAllowed(radius) {
		return nil, fmt.Errorf("%w: %d (allowed: %v)", domain.ErrInvalidRadius, radius, settings.Game.AllowedRadii)
	}

	if settings.Image.Enforced() {
		if err := checkSize("original", draft.Original, settings.Image); err != nil {
			return nil, err
		}
		if err := checkSize("modified", draft.Modified, settings.Image); err != nil {
			return nil, err
		}
	}

	result, err := s.diff.Find(ctx, draft.Original, draft.Modified, radius)
	if err != nil {
		return nil, err
	}

	count := len(result.Differences)
	if count < settings.Game.MinDifferences || count > settings.Game.MaxDifferences {
		return nil, fmt.Errorf("%w: found %d, need between %d and %d",
			domain.ErrDifferenceCount, count, settings.Game.MinDifferences, settings.Game.MaxDifferences)
	}

	game := &domain.Game{
		ID:          uuid.New().String(),
		Name:        name,
		Radius:      radius,
		Width:       result.Width,
		Height:      result.Height,
		Differences: result.Differences,
		Difficulty:  result.Difficulty,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.store.Save(ctx, game); err != nil {
		return nil, fmt.Errorf("save game: %w", err)
	}
	logger.Info("Created game %s (%q, %d differences, %s)", game.ID, game.Name, count, game.Difficulty)

	return game, nil
}

// Get retrieves a game by ID.
func (s *GameService) Get(ctx context.Context, id string) (*domain.Game, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return s.store.Get(ctx, id)
}

// List returns summaries of all games, newest first.
func (s *GameService) List(ctx context.Context) ([]domain.GameSummary, error) {
	if s.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	games, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.GameSummary, 0, len(games))
	for _, g := range games {
		summaries = append(summaries, g.Summary())
	}
	return summaries, nil
}

// Delete removes a game.
func (s *GameService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrStoreUnavailable
	}
	return s.store.Delete(ctx, id)
}

// Check validates a click against the differences not yet in found.
// Differences are tried in answer-key order and the first that contains
// the click wins.
func (s *GameService) Check(
	ctx context.Context,
	id string,
	click domain.Point,
	found []int,
) (domain.CheckResult, error) {
	miss := domain.CheckResult{Index: -1}

	game, err := s.Get(ctx, id)
	if err != nil {
		return miss, err
	}

	if !click.In(game.Width, game.Height) {
		return miss, fmt.Errorf("%w: %s outside %dx%d", domain.ErrOutOfBounds, click, game.Width, game.Height)
	}

	discovered := make(map[int]bool, len(found))
	for _, idx := range found {
		if idx < 0 || idx >= len(game.Differences) {
			return miss, fmt.Errorf("%w: difference index %d out of range [0, %d)",
				domain.ErrInvalidInput, idx, len(game.Differences))
		}
		discovered[idx] = true
	}
	remaining := len(game.Differences) - len(discovered)

	for i, diff := range game.Differences {
		if discovered[i] || !diff.Contains(click) {
			continue
		}
		logger.Debug("Click %s hit difference %d of game %s", click, i, id)
		return domain.CheckResult{
			Hit:        true,
			Index:      i,
			Difference: diff,
			Remaining:  remaining - 1,
		}, nil
	}

	miss.Remaining = remaining
	return miss, nil
}

func (s *GameService) currentSettings() (*domain.AppSettings, error) {
	if s.settings == nil {
		defaults := domain.DefaultAppSettings()
		return &defaults, nil
	}
	return s.settings.Get()
}

func checkSize(which string, img *image.RGBA, want domain.ImageSettings) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w != want.Width || h != want.Height {
		return fmt.Errorf("%w: %s image is %dx%d, expected %dx%d",
			domain.ErrDimensionMismatch, which, w, h, want.Width, want.Height)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/engine"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driving"
	"github.com/sucyhan/polydiff-2023-sub000/internal/logger"
)

// Ensure DiffService implements the interface.
var _ driving.DiffService = (*DiffService)(nil)

// DiffService runs the difference engine off the caller's goroutine.
type DiffService struct{}

// NewDiffService creates a new diff service.
func NewDiffService() *DiffService {
	return &DiffService{}
}

type diffOutcome struct {
	result *domain.DiffResult
	err    error
}

// Find computes the differences between two images.
// It returns as soon as ctx is done; the engine observes the same ctx
// and stops at its next cancellation check.
func (s *DiffService) Find(
	ctx context.Context,
	original, modified *image.RGBA,
	radius int,
) (*domain.DiffResult, error) {
	logger.Section("Find differences")
	if original == nil || modified == nil {
		return nil, fmt.Errorf("%w: both images are required", domain.ErrInvalidInput)
	}
	logger.Debug("Size: %dx%d, radius: %d", original.Rect.Dx(), original.Rect.Dy(), radius)

	start := time.Now()
	done := make(chan diffOutcome, 1)
	go func() {
		res, err := engine.Find(ctx, original, modified, radius)
		done <- diffOutcome{result: res, err: err}
	}()

	select {
	case <-ctx.Done():
		logger.Warn("Difference search cancelled: %v", ctx.Err())
		return nil, ctx.Err()
	case out := <-done:
		logger.Since("Difference search", start)
		if out.err != nil {
			return nil, out.err
		}
		logger.Debug("Seeds: %d", len(out.result.Seeds))
		logger.Info("Found %d differences (%s, %.2f%% coverage)",
			len(out.result.Differences), out.result.Difficulty, out.result.Coverage())
		return out.result, nil
	}
}

package driving

import (
	"context"
	"image"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// DiffService computes the differences between two images.
type DiffService interface {
	// Find compares two same-size images and returns the answer key along
	// with the dilated mask and seed points.
	Find(ctx context.Context, original, modified *image.RGBA, radius int) (*domain.DiffResult, error)
}

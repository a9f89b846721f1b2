package driven

import (
	"image"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// ImageLoader reads and writes image files.
type ImageLoader interface {
	// Load decodes the image at path and converts it to RGBA.
	// Returns domain.ErrUnsupportedFormat when the file cannot be decoded.
	Load(path string) (*image.RGBA, error)

	// SavePNG encodes img as PNG at path.
	SavePNG(path string, img image.Image) error
}

// PreviewRenderer draws a difference preview for game creators.
type PreviewRenderer interface {
	// Render draws base with the differences of res outlined and writes
	// the result as PNG to path.
	Render(base *image.RGBA, res *domain.DiffResult, path string) error
}

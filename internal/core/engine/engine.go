package engine

import (
	"context"
	"fmt"
	"image"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// FindDifferences runs the whole pipeline on two row-major RGBA buffers.
// Identical buffers yield no differences and a Facile rating.
func FindDifferences(ctx context.Context, a, b []byte, width, height, radius int) (domain.ImageDiffs, error) {
	res, err := run(ctx, a, b, width, height, radius)
	if err != nil {
		return domain.ImageDiffs{}, err
	}
	return res.ImageDiffs, nil
}

// Find runs the pipeline on two images of the same size and returns the
// answer key together with the mask and seed points.
func Find(ctx context.Context, imgA, imgB *image.RGBA, radius int) (*domain.DiffResult, error) {
	if imgA == nil || imgB == nil {
		return nil, fmt.Errorf("%w: nil image", domain.ErrInvalidInput)
	}
	sa, sb := imgA.Bounds().Size(), imgB.Bounds().Size()
	if sa != sb {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", domain.ErrDimensionMismatch, sa.X, sa.Y, sb.X, sb.Y)
	}
	return run(ctx, Pixels(imgA), Pixels(imgB), sa.X, sa.Y, radius)
}

func run(ctx context.Context, a, b []byte, width, height, radius int) (*domain.DiffResult, error) {
	mask, seeds, err := ComputeMask(a, b, width, height, radius)
	if err != nil {
		return nil, err
	}

	regions, err := ExtractDifferences(ctx, mask, seeds)
	if err != nil {
		return nil, err
	}

	covered := 0
	for _, r := range regions {
		covered += len(r)
	}

	differences := DecomposeAll(regions)
	return &domain.DiffResult{
		ImageDiffs: domain.ImageDiffs{
			Differences: differences,
			Difficulty:  Rate(len(differences), Coverage(covered, width*height)),
		},
		Mask:   mask,
		Seeds:  seeds,
		Radius: radius,
		Width:  width,
		Height: height,
	}, nil
}

// Pixels returns the image's pixels as a tightly packed row-major buffer.
// The image's own buffer is returned when it already has that layout.
func Pixels(img *image.RGBA) []byte {
	b := img.Bounds()
	rowLen := b.Dx() * bytesPerPixel
	if img.Stride == rowLen && len(img.Pix) == rowLen*b.Dy() {
		return img.Pix
	}
	buf := make([]byte, 0, rowLen*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		o := img.PixOffset(b.Min.X, y)
		buf = append(buf, img.Pix[o:o+rowLen]...)
	}
	return buf
}

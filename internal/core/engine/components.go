package engine

import (
	"context"
	"image"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// cancelCheckInterval is how many pixels a flood fill visits between
// context checks. Must be a power of two.
const cancelCheckInterval = 1 << 12

// ExtractDifferences groups the black pixels of mask into 8-connected regions.
//
// Seeds are visited in order; a seed that is black and not yet part of a
// region starts a flood fill that grows through every connected black pixel,
// dilated ones included. Each fill yields one point list. The fill honours
// ctx and returns ctx.Err() once it is cancelled.
func ExtractDifferences(ctx context.Context, mask *image.RGBA, seeds []domain.Point) ([][]domain.Point, error) {
	b := mask.Bounds()
	width, height := b.Dx(), b.Dy()
	visited := make([]bool, width*height)

	var regions [][]domain.Point
	for _, seed := range seeds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !seed.In(width, height) || visited[seed.Y*width+seed.X] {
			continue
		}
		if !blackAt(mask, seed.X, seed.Y) {
			continue
		}
		region, err := floodFill(ctx, mask, visited, seed)
		if err != nil {
			return nil, err
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// floodFill collects the 8-connected black region containing start.
// Pixels are marked visited when pushed so that each is collected once.
func floodFill(ctx context.Context, mask *image.RGBA, visited []bool, start domain.Point) ([]domain.Point, error) {
	b := mask.Bounds()
	width, height := b.Dx(), b.Dy()

	visited[start.Y*width+start.X] = true
	region := []domain.Point{start}
	stack := []domain.Point{start}

	for popped := 1; len(stack) > 0; popped++ {
		if popped&(cancelCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range neighbours {
			q := domain.Point{X: p.X + n.X, Y: p.Y + n.Y}
			if !q.In(width, height) {
				continue
			}
			idx := q.Y*width + q.X
			if visited[idx] || !blackAt(mask, q.X, q.Y) {
				continue
			}
			visited[idx] = true
			region = append(region, q)
			stack = append(stack, q)
		}
	}

	return region, nil
}

// blackAt reports whether the mask pixel at (x, y), relative to the mask's
// origin, is opaque black.
func blackAt(mask *image.RGBA, x, y int) bool {
	o := mask.PixOffset(mask.Rect.Min.X+x, mask.Rect.Min.Y+y)
	return isBlack(mask.Pix[o : o+4])
}

package services

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// whiteImage returns an opaque white image of the given size.
func whiteImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

// withSquares returns a copy of base with a black size×size square at each
// top-left corner.
func withSquares(base *image.RGBA, size int, corners ...image.Point) *image.RGBA {
	img := image.NewRGBA(base.Bounds())
	copy(img.Pix, base.Pix)
	for _, c := range corners {
		r := image.Rect(c.X, c.Y, c.X+size, c.Y+size)
		draw.Draw(img, r, image.NewUniform(color.Black), image.Point{}, draw.Src)
	}
	return img
}

// squareRow returns n corners spaced 40px apart along y = 10.
func squareRow(n int) []image.Point {
	corners := make([]image.Point, n)
	for i := range corners {
		corners[i] = image.Point{X: 10 + 40*i, Y: 10}
	}
	return corners
}

// mockDiffService implements driving.DiffService for testing.
type mockDiffService struct {
	result *domain.DiffResult
	err    error
	radius int
	calls  int
}

func (m *mockDiffService) Find(_ context.Context, _, _ *image.RGBA, radius int) (*domain.DiffResult, error) {
	m.calls++
	m.radius = radius
	return m.result, m.err
}

// mockGameStore implements driven.GameStore with injectable failures.
type mockGameStore struct {
	saveErr error
	listErr error
}

func (m *mockGameStore) Save(_ context.Context, _ *domain.Game) error {
	return m.saveErr
}

func (m *mockGameStore) Get(_ context.Context, _ string) (*domain.Game, error) {
	return nil, domain.ErrNotFound
}

func (m *mockGameStore) List(_ context.Context) ([]*domain.Game, error) {
	return nil, m.listErr
}

func (m *mockGameStore) Delete(_ context.Context, _ string) error {
	return domain.ErrNotFound
}

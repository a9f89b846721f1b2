package engine

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

func TestComparePoints(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.Point
		want int
	}{
		{"lower row first", domain.Point{X: 9, Y: 0}, domain.Point{X: 0, Y: 1}, -1},
		{"higher row last", domain.Point{X: 0, Y: 2}, domain.Point{X: 9, Y: 1}, 1},
		{"same row by x", domain.Point{X: 1, Y: 4}, domain.Point{X: 2, Y: 4}, -1},
		{"same row reversed", domain.Point{X: 3, Y: 4}, domain.Point{X: 2, Y: 4}, 1},
		{"equal points", domain.Point{X: 3, Y: 4}, domain.Point{X: 3, Y: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := comparePoints(tt.a, tt.b)
			switch {
			case tt.want < 0:
				assert.Negative(t, got)
			case tt.want > 0:
				assert.Positive(t, got)
			default:
				assert.Zero(t, got)
			}
		})
	}
}

func TestSortPoints_RowMajor(t *testing.T) {
	points := []domain.Point{{X: 2, Y: 1}, {X: 0, Y: 1}, {X: 5, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	SortPoints(points)

	assert.Equal(t, []domain.Point{{X: 1, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}, points)
}

func TestSortPoints_Idempotent(t *testing.T) {
	points := domain.Rect(0, 0, 9, 9).Points()
	want := slices.Clone(points)

	SortPoints(points)
	assert.Equal(t, want, points)

	SortPoints(points)
	assert.Equal(t, want, points)
}

func TestSortPoints_KeepsDuplicates(t *testing.T) {
	points := []domain.Point{{X: 1, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}

	SortPoints(points)

	assert.Equal(t, []domain.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 1}}, points)
}

func TestSortPoints_Small(t *testing.T) {
	var empty []domain.Point
	SortPoints(empty)
	assert.Empty(t, empty)

	single := []domain.Point{{X: 4, Y: 2}}
	SortPoints(single)
	assert.Equal(t, []domain.Point{{X: 4, Y: 2}}, single)
}

func TestSortPoints_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 20; round++ {
		points := make([]domain.Point, rng.Intn(500)+1)
		for i := range points {
			points[i] = domain.Point{X: rng.Intn(40), Y: rng.Intn(40)}
		}
		want := slices.Clone(points)
		slices.SortStableFunc(want, comparePoints)

		SortPoints(points)

		assert.Equal(t, want, points, "round %d", round)
	}
}

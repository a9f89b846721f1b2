package engine

import "github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"

// comparePoints orders points row-major: by Y, then by X.
// It returns a negative value when a comes first, zero when the points are
// equal and a positive value when b comes first.
func comparePoints(a, b domain.Point) int {
	switch {
	case a.Y != b.Y:
		return a.Y - b.Y
	default:
		return a.X - b.X
	}
}

// SortPoints sorts points row-major in place with a stable merge sort.
func SortPoints(points []domain.Point) {
	if len(points) < 2 {
		return
	}
	scratch := make([]domain.Point, len(points))
	mergeSort(points, scratch)
}

// mergeSort sorts points using scratch (same length) as the merge buffer.
func mergeSort(points, scratch []domain.Point) {
	n := len(points)
	if n < 2 {
		return
	}
	mid := n / 2
	mergeSort(points[:mid], scratch[:mid])
	mergeSort(points[mid:], scratch[mid:])

	// Already ordered halves need no merge.
	if comparePoints(points[mid-1], points[mid]) <= 0 {
		return
	}

	copy(scratch, points)
	left, right := scratch[:mid], scratch[mid:n]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// Ties take from the left half, which keeps the sort stable.
		if comparePoints(right[j], left[i]) < 0 {
			points[k] = right[j]
			j++
		} else {
			points[k] = left[i]
			i++
		}
		k++
	}
	k += copy(points[k:], left[i:])
	copy(points[k:], right[j:])
}

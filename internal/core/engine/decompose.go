package engine

import "github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"

// Decompose converts a row-major sorted point list into rectangles that
// cover exactly those points.
//
// The first pass merges horizontally adjacent points of a row into lines.
// The second pass stacks each line onto the rectangle being grown when both
// have the same horizontal span, or onto the rectangle before it when that
// one was opened on the same row (left and right edges of a ring alternate
// like this). Any other line opens a new rectangle. A line only extends a
// rectangle whose last row is directly above it.
func Decompose(points []domain.Point) domain.Difference {
	if len(points) == 0 {
		return nil
	}
	return mergeRectangles(mergeLines(points))
}

// DecomposeAll sorts each point list and decomposes it.
// The lists are sorted in place.
func DecomposeAll(pointLists [][]domain.Point) []domain.Difference {
	differences := make([]domain.Difference, 0, len(pointLists))
	for _, points := range pointLists {
		if len(points) == 0 {
			continue
		}
		SortPoints(points)
		differences = append(differences, Decompose(points))
	}
	return differences
}

// mergeLines groups consecutive points of the same row into maximal
// horizontal runs.
func mergeLines(points []domain.Point) []domain.Rectangle {
	lines := []domain.Rectangle{{Point1: points[0], Point2: points[0]}}
	previous := points[0]

	for _, p := range points[1:] {
		current := &lines[len(lines)-1]
		if p.Y == current.Point2.Y && p.X-previous.X == 1 {
			current.Point2.X = p.X
		} else {
			lines = append(lines, domain.Rectangle{Point1: p, Point2: p})
		}
		previous = p
	}

	return lines
}

// mergeRectangles stacks lines with equal spans into rectangles.
func mergeRectangles(lines []domain.Rectangle) domain.Difference {
	rectangles := domain.Difference{lines[0]}

	for _, line := range lines[1:] {
		c := len(rectangles) - 1
		switch {
		case canStack(rectangles[c], line):
			rectangles[c].Point2.Y = line.Point2.Y
		case c > 0 && canStack(rectangles[c-1], line) &&
			rectangles[c].Point1.Y == rectangles[c-1].Point1.Y:
			rectangles[c-1].Point2.Y = line.Point2.Y
		default:
			rectangles = append(rectangles, line)
		}
	}

	return rectangles
}

// canStack reports whether line can extend r downwards: same span, and the
// line sits on the row right below r.
func canStack(r, line domain.Rectangle) bool {
	return line.Point1.X == r.Point1.X &&
		line.Point2.X == r.Point2.X &&
		line.Point1.Y == r.Point2.Y+1
}

package domain

import "image"

// Difficulty rates how hard a set of differences is to find.
type Difficulty string

// Available difficulty labels. The values are the labels players see.
const (
	// DifficultyEasy is assigned to games with few or large differences.
	DifficultyEasy Difficulty = "Facile"

	// DifficultyHard is assigned to games with many small differences.
	DifficultyHard Difficulty = "Difficile"
)

// IsValid returns true if the difficulty is recognised.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyHard:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d Difficulty) String() string {
	return string(d)
}

// Description returns a human-readable description of the difficulty.
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Difference is one connected region of differing pixels, stored as
// rectangles that cover the region exactly once.
type Difference []Rectangle

// Contains reports whether any rectangle of the difference contains p.
func (d Difference) Contains(p Point) bool {
	for _, r := range d {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// PixelCount returns the number of pixels covered by the difference.
// Rectangles of a difference never overlap, so areas add up.
func (d Difference) PixelCount() int {
	total := 0
	for _, r := range d {
		total += r.Area()
	}
	return total
}

// Points expands the difference back into its pixels.
func (d Difference) Points() []Point {
	points := make([]Point, 0, d.PixelCount())
	for _, r := range d {
		points = append(points, r.Points()...)
	}
	return points
}

// Bounds returns the smallest rectangle enclosing the difference.
func (d Difference) Bounds() Rectangle {
	if len(d) == 0 {
		return Rectangle{}
	}
	b := d[0]
	for _, r := range d[1:] {
		b.Point1.X = min(b.Point1.X, r.Point1.X)
		b.Point1.Y = min(b.Point1.Y, r.Point1.Y)
		b.Point2.X = max(b.Point2.X, r.Point2.X)
		b.Point2.Y = max(b.Point2.Y, r.Point2.Y)
	}
	return b
}

// ImageDiffs is the answer key computed for an image pair.
type ImageDiffs struct {
	Differences []Difference `json:"differences"`
	Difficulty  Difficulty   `json:"difficulty"`
}

// PixelCount returns the number of pixels covered by all differences.
func (d ImageDiffs) PixelCount() int {
	total := 0
	for _, diff := range d.Differences {
		total += diff.PixelCount()
	}
	return total
}

// DiffResult is the full output of one engine run: the answer key plus the
// intermediate mask and seed points a creator may want to inspect.
type DiffResult struct {
	ImageDiffs

	// Mask is the dilated black/white difference mask.
	Mask *image.RGBA `json:"-"`

	// Seeds are the exterior differing pixels in raster order.
	Seeds []Point `json:"-"`

	// Radius is the dilation radius the mask was built with.
	Radius int `json:"radius"`

	// Width and Height are the dimensions of the compared images.
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Coverage returns the percentage of the image covered by differences.
func (r *DiffResult) Coverage() float64 {
	total := r.Width * r.Height
	if total == 0 {
		return 0
	}
	return 100 * float64(r.PixelCount()) / float64(total)
}

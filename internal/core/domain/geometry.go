package domain

import "fmt"

// Point is a pixel coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// In reports whether the point lies inside a width×height surface.
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Rectangle is an axis-aligned box with inclusive corners.
// Point1 is the top-left corner and Point2 the bottom-right one.
type Rectangle struct {
	Point1 Point `json:"point1"`
	Point2 Point `json:"point2"`
}

// Rect builds a rectangle from its inclusive corner coordinates.
func Rect(x1, y1, x2, y2 int) Rectangle {
	return Rectangle{Point1: Point{X: x1, Y: y1}, Point2: Point{X: x2, Y: y2}}
}

// IsValid returns true if Point1 is not below or right of Point2.
func (r Rectangle) IsValid() bool {
	return r.Point1.X <= r.Point2.X && r.Point1.Y <= r.Point2.Y
}

// Width returns the number of columns covered.
func (r Rectangle) Width() int {
	return r.Point2.X - r.Point1.X + 1
}

// Height returns the number of rows covered.
func (r Rectangle) Height() int {
	return r.Point2.Y - r.Point1.Y + 1
}

// Area returns the number of pixels covered.
func (r Rectangle) Area() int {
	return r.Width() * r.Height()
}

// Contains reports whether p lies inside the rectangle, bounds included.
func (r Rectangle) Contains(p Point) bool {
	return p.X >= r.Point1.X && p.X <= r.Point2.X &&
		p.Y >= r.Point1.Y && p.Y <= r.Point2.Y
}

// Overlaps reports whether the two rectangles share at least one pixel.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return r.Point1.X <= o.Point2.X && o.Point1.X <= r.Point2.X &&
		r.Point1.Y <= o.Point2.Y && o.Point1.Y <= r.Point2.Y
}

// Points expands the rectangle into its pixels in row-major order.
func (r Rectangle) Points() []Point {
	if !r.IsValid() {
		return nil
	}
	points := make([]Point, 0, r.Area())
	for y := r.Point1.Y; y <= r.Point2.Y; y++ {
		for x := r.Point1.X; x <= r.Point2.X; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// String returns the rectangle as "[(x1, y1) -> (x2, y2)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[%s -> %s]", r.Point1, r.Point2)
}

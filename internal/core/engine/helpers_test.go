package engine

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

// canvas is a pair of identical white RGBA buffers; paint marks pixels of
// the second buffer as different.
type canvas struct {
	width, height int
	a, b          []byte
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		a:      make([]byte, width*height*bytesPerPixel),
		b:      make([]byte, width*height*bytesPerPixel),
	}
	for i := range c.a {
		c.a[i] = 0xff
		c.b[i] = 0xff
	}
	return c
}

func (c *canvas) paint(points ...domain.Point) *canvas {
	for _, p := range points {
		o := (p.Y*c.width + p.X) * bytesPerPixel
		c.b[o] = 0x10
	}
	return c
}

func (c *canvas) paintRect(r domain.Rectangle) *canvas {
	return c.paint(r.Points()...)
}

// ring returns the pixels of a hollow square outline of the given
// thickness with top-left corner (x, y).
func ring(x, y, size, thickness int) []domain.Point {
	var points []domain.Point
	for py := y; py < y+size; py++ {
		for px := x; px < x+size; px++ {
			inner := px >= x+thickness && px < x+size-thickness &&
				py >= y+thickness && py < y+size-thickness
			if !inner {
				points = append(points, domain.Point{X: px, Y: py})
			}
		}
	}
	return points
}

// cross returns a plus sign centred on (cx, cy) with arms of length arm.
func cross(cx, cy, arm int) []domain.Point {
	var points []domain.Point
	for dy := -arm; dy <= arm; dy++ {
		if dy == 0 {
			for dx := -arm; dx <= arm; dx++ {
				points = append(points, domain.Point{X: cx + dx, Y: cy})
			}
			continue
		}
		points = append(points, domain.Point{X: cx, Y: cy + dy})
	}
	return points
}

func maskFrom(width, height int, black ...domain.Point) *image.RGBA {
	mask := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		setWhite(mask.Pix[i*4 : i*4+4])
	}
	for _, p := range black {
		o := mask.PixOffset(p.X, p.Y)
		setBlack(mask.Pix[o : o+4])
	}
	return mask
}

func pointSet(points []domain.Point) map[domain.Point]bool {
	set := make(map[domain.Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

// requirePartition asserts that the rectangles of d never overlap and
// cover exactly the given points.
func requirePartition(t *testing.T, d domain.Difference, points []domain.Point) {
	t.Helper()

	for i := range d {
		require.True(t, d[i].IsValid(), "rectangle %d is inverted: %v", i, d[i])
		for j := i + 1; j < len(d); j++ {
			require.False(t, d[i].Overlaps(d[j]), "rectangles %v and %v overlap", d[i], d[j])
		}
	}

	want := pointSet(points)
	got := pointSet(d.Points())
	require.Equal(t, len(want), d.PixelCount(), "covered pixel count")
	require.Equal(t, want, got)
}

package engine

import (
	"fmt"
	"image"
	"math"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

const bytesPerPixel = 4

// neighbours are the 8-connected offsets, N, S, E, W then diagonals.
var neighbours = [8]image.Point{
	{X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: -1, Y: 0},
	{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: 1},
}

// ComputeMask compares two row-major RGBA buffers of width×height pixels.
//
// The returned mask is opaque black where the pixels differ (on any of R, G,
// B or A) and opaque white elsewhere. Every exterior differing pixel (one with
// at least one in-bounds neighbour that does not differ) is returned as a seed
// point, in raster order, and gets a filled disk of the given radius painted
// black around it. Painting is additive: black is never erased.
func ComputeMask(a, b []byte, width, height, radius int) (*image.RGBA, []domain.Point, error) {
	if err := checkBuffer("first", a, width, height); err != nil {
		return nil, nil, err
	}
	if err := checkBuffer("second", b, width, height); err != nil {
		return nil, nil, err
	}
	if radius < 0 {
		return nil, nil, fmt.Errorf("%w: negative radius %d", domain.ErrInvalidRadius, radius)
	}

	mask := image.NewRGBA(image.Rect(0, 0, width, height))
	different := make([]bool, width*height)
	for i := range different {
		o := i * bytesPerPixel
		different[i] = a[o] != b[o] || a[o+1] != b[o+1] || a[o+2] != b[o+2] || a[o+3] != b[o+3]
		if different[i] {
			setBlack(mask.Pix[o : o+4])
		} else {
			setWhite(mask.Pix[o : o+4])
		}
	}

	// A disk of radius width+height covers the whole mask from any centre.
	disk := newDisk(min(radius, width+height))
	var seeds []domain.Point
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !different[y*width+x] || !isExterior(different, x, y, width, height) {
				continue
			}
			seeds = append(seeds, domain.Point{X: x, Y: y})
			disk.paint(mask, x, y)
		}
	}

	return mask, seeds, nil
}

func checkBuffer(which string, buf []byte, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: invalid size %dx%d", domain.ErrDimensionMismatch, width, height)
	}
	if want := width * height * bytesPerPixel; len(buf) != want {
		return fmt.Errorf("%w: %s buffer has %d bytes, want %d for %dx%d",
			domain.ErrDimensionMismatch, which, len(buf), want, width, height)
	}
	return nil
}

// isExterior reports whether the differing pixel at (x, y) touches a pixel
// that does not differ. Neighbours outside the image are ignored.
func isExterior(different []bool, x, y, width, height int) bool {
	for _, n := range neighbours {
		nx, ny := x+n.X, y+n.Y
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		if !different[ny*width+nx] {
			return true
		}
	}
	return false
}

// disk is a filled circle rasterised once as per-row half widths.
type disk struct {
	radius int
	// half[dy+radius] is the largest dx with dx²+dy² ≤ radius².
	half []int
}

func newDisk(radius int) disk {
	d := disk{radius: radius, half: make([]int, 2*radius+1)}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		h := int(math.Sqrt(float64(r2 - dy*dy)))
		// Guard against sqrt rounding at the boundary.
		for (h+1)*(h+1)+dy*dy <= r2 {
			h++
		}
		for h*h+dy*dy > r2 {
			h--
		}
		d.half[dy+radius] = h
	}
	return d
}

// paint fills the disk centred on (cx, cy), clipped to the mask.
func (d disk) paint(mask *image.RGBA, cx, cy int) {
	b := mask.Bounds()
	for dy := -d.radius; dy <= d.radius; dy++ {
		y := cy + dy
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		h := d.half[dy+d.radius]
		x0, x1 := max(cx-h, b.Min.X), min(cx+h, b.Max.X-1)
		for x := x0; x <= x1; x++ {
			o := mask.PixOffset(x, y)
			setBlack(mask.Pix[o : o+4])
		}
	}
}

func setBlack(px []byte) {
	px[0], px[1], px[2], px[3] = 0, 0, 0, 0xff
}

func setWhite(px []byte) {
	px[0], px[1], px[2], px[3] = 0xff, 0xff, 0xff, 0xff
}

func isBlack(px []byte) bool {
	return px[0] == 0 && px[1] == 0 && px[2] == 0 && px[3] == 0xff
}

package render

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.PreviewRenderer = (*Renderer)(nil)

// MaskTint is blended over every black mask pixel.
var MaskTint = color.NRGBA{R: 230, G: 30, B: 30, A: 96}

// SeedColor marks exterior seed points.
var SeedColor = color.NRGBA{R: 255, G: 200, B: 0, A: 255}

// SeedHalo fills the dilation disk around each seed.
var SeedHalo = color.NRGBA{R: 255, G: 200, B: 0, A: 80}

// outline colours cycle across differences.
var palette = []color.NRGBA{
	{R: 0, G: 120, B: 255, A: 255},
	{R: 0, G: 170, B: 80, A: 255},
	{R: 170, G: 0, B: 200, A: 255},
	{R: 240, G: 120, B: 0, A: 255},
	{R: 0, G: 160, B: 170, A: 255},
}

// Renderer draws previews with gg.
type Renderer struct {
	// LineWidth is the stroke width of difference outlines.
	LineWidth float64

	// Labels enables difference numbering by answer-key index.
	Labels bool
}

// NewRenderer creates a renderer with outlines and labels enabled.
func NewRenderer() *Renderer {
	return &Renderer{LineWidth: 2, Labels: true}
}

// Render draws the preview and writes it to path as PNG.
func (r *Renderer) Render(base *image.RGBA, res *domain.DiffResult, path string) error {
	img, err := r.Draw(base, res)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	dc := gg.NewContextForImage(img)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving preview: %w", err)
	}
	return nil
}

// Draw renders the preview in memory. A nil base draws on white.
func (r *Renderer) Draw(base *image.RGBA, res *domain.DiffResult) (image.Image, error) {
	if res == nil {
		return nil, fmt.Errorf("%w: nil result", domain.ErrInvalidInput)
	}
	width, height := res.Width, res.Height
	if base != nil {
		if b := base.Bounds(); b.Dx() != width || b.Dy() != height {
			return nil, fmt.Errorf("%w: base %dx%d, result %dx%d",
				domain.ErrDimensionMismatch, b.Dx(), b.Dy(), width, height)
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty result", domain.ErrInvalidInput)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	if base != nil {
		dc.DrawImage(base, -base.Rect.Min.X, -base.Rect.Min.Y)
	}

	if res.Mask != nil {
		dc.DrawImage(tint(res.Mask), 0, 0)
	}

	// Seed disks show the dilation that joined nearby pixels.
	radius := max(float64(min(res.Radius, width+height)), 0.5)
	dc.SetColor(SeedHalo)
	for _, s := range res.Seeds {
		dc.DrawCircle(float64(s.X)+0.5, float64(s.Y)+0.5, radius)
		dc.Fill()
	}

	dc.SetLineWidth(r.LineWidth)
	for i, diff := range res.Differences {
		if len(diff) == 0 {
			continue
		}
		dc.SetColor(palette[i%len(palette)])
		for _, rect := range diff {
			dc.DrawRectangle(float64(rect.Point1.X), float64(rect.Point1.Y),
				float64(rect.Width()), float64(rect.Height()))
			dc.Stroke()
		}

		if r.Labels {
			bounds := diff.Bounds()
			dc.DrawStringAnchored(strconv.Itoa(i),
				float64(bounds.Point1.X), float64(bounds.Point1.Y)-2, 0, 0)
		}
	}

	dc.SetColor(SeedColor)
	for _, s := range res.Seeds {
		dc.SetPixel(s.X, s.Y)
	}

	return dc.Image(), nil
}

// tint returns a transparent overlay with MaskTint over black mask pixels.
func tint(mask *image.RGBA) *image.NRGBA {
	b := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := mask.RGBAAt(b.Min.X+x, b.Min.Y+y)
			if c.R == 0 && c.G == 0 && c.B == 0 && c.A == 255 {
				out.SetNRGBA(x, y, MaskTint)
			}
		}
	}
	return out
}

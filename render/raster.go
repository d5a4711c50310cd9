package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/internal/filter"
)

// Rasterize returns the anti-aliased coverage of p filled with the nonzero
// rule on a width x height canvas.
func Rasterize(p *shapekit.Path, width, height int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}
	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	feed(z, p)
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// feed sends p to z as lines and cubics, closing every subpath.
func feed(z *vector.Rasterizer, p *shapekit.Path) {
	open := false
	for _, elem := range p.Cubics().Elements() {
		switch e := elem.(type) {
		case shapekit.MoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
			open = true
		case shapekit.LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case shapekit.CubicTo:
			z.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case shapekit.Close:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}

// ImageRenderer rasterizes scenes into an RGBA image.
type ImageRenderer struct {
	dst  *image.RGBA
	opts options
}

// NewImageRenderer creates a renderer drawing into dst. The scene origin
// maps to dst.Bounds().Min.
func NewImageRenderer(dst *image.RGBA, opts ...Option) *ImageRenderer {
	return &ImageRenderer{dst: dst, opts: applyOptions(opts)}
}

// Render draws s into the destination image.
func (r *ImageRenderer) Render(s *Scene) error {
	if r.dst == nil {
		return errors.New("render: nil destination image")
	}
	if s == nil {
		return nil
	}
	b := r.dst.Bounds()
	if bg := s.Background(); bg != nil {
		draw.Draw(r.dst, b, image.NewUniform(bg), image.Point{}, draw.Src)
	}
	for _, c := range s.Commands() {
		if c.Color == nil {
			continue
		}
		var mask *image.Alpha
		switch c.Op {
		case OpStroke:
			mask = strokeMask(c.Path, c.Width, b.Dx(), b.Dy())
		default:
			if sh := c.Shadow; sh != nil && sh.Color != nil {
				shadow := Rasterize(c.Path.Transform(shapekit.Translate(sh.Dx, sh.Dy)), b.Dx(), b.Dy())
				filter.BlurAlpha(shadow, sh.Radius/2)
				composite(r.dst, shadow, sh.Color)
			}
			mask = Rasterize(c.Path, b.Dx(), b.Dy())
		}
		composite(r.dst, mask, c.Color)
	}
	return nil
}

func composite(dst *image.RGBA, mask *image.Alpha, c color.Color) {
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

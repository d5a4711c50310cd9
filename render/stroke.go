package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg/surface"

	"github.com/gogpu/shapekit"
)

// strokeMask returns the coverage of p stroked at width with butt caps and
// round joins, as drawn by gg's software surface.
func strokeMask(p *shapekit.Path, width float64, w, h int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if width <= 0 || p.Len() == 0 {
		return mask
	}

	surf := surface.NewImageSurface(w, h)
	defer surf.Close()
	surf.Stroke(surfacePath(p), surface.StrokeStyle{
		Color:      color.White,
		Width:      width,
		Cap:        surface.LineCapButt,
		Join:       surface.LineJoinRound,
		MiterLimit: 4,
	})

	// the surface starts transparent, so its alpha is the coverage
	img := surf.Image()
	for y := 0; y < h; y++ {
		src := img.Pix[y*img.Stride:]
		dst := mask.Pix[y*mask.Stride:]
		for x := 0; x < w; x++ {
			dst[x] = src[4*x+3]
		}
	}
	return mask
}

// surfacePath converts p to a gg surface path, arcs as cubics.
func surfacePath(p *shapekit.Path) *surface.Path {
	out := surface.NewPath()
	for _, elem := range p.Cubics().Elements() {
		switch e := elem.(type) {
		case shapekit.MoveTo:
			out.MoveTo(e.Point.X, e.Point.Y)
		case shapekit.LineTo:
			out.LineTo(e.Point.X, e.Point.Y)
		case shapekit.CubicTo:
			out.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case shapekit.Close:
			out.Close()
		}
	}
	return out
}

package render

import (
	"errors"
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/shapekit"
)

// GlyphPath returns the outline of text set in f at size pixels per em,
// with the baseline of the first glyph starting at origin. Quadratic glyph
// segments are raised to cubics. Pair kerning is applied when the font
// has a kern table.
func GlyphPath(f *sfnt.Font, size float64, text string, origin shapekit.Point) (*shapekit.Path, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	p := shapekit.NewPath()
	x := origin.X

	var prev sfnt.GlyphIndex
	for i, r := range []rune(text) {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return nil, fmt.Errorf("render: glyph for %q: %w", r, err)
		}
		if i > 0 {
			k, err := f.Kern(&buf, prev, gi, ppem, font.HintingNone)
			switch {
			case err == nil:
				x += fixedToFloat(k)
			case !errors.Is(err, sfnt.ErrNotFound):
				return nil, fmt.Errorf("render: kern %q: %w", r, err)
			}
		}
		segs, err := f.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("render: load glyph %q: %w", r, err)
		}
		appendSegments(p, segs, shapekit.Pt(x, origin.Y))

		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return nil, fmt.Errorf("render: advance %q: %w", r, err)
		}
		x += fixedToFloat(adv)
		prev = gi
	}
	return p, nil
}

// appendSegments adds glyph segments, whose y axis already points down,
// translated by o. Each contour is closed.
func appendSegments(p *shapekit.Path, segs sfnt.Segments, o shapekit.Point) {
	pt := func(v fixed.Point26_6) shapekit.Point {
		return shapekit.Pt(o.X+fixedToFloat(v.X), o.Y+fixedToFloat(v.Y))
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			a := pt(s.Args[0])
			p.MoveTo(a.X, a.Y)
			open = true
		case sfnt.SegmentOpLineTo:
			a := pt(s.Args[0])
			p.LineTo(a.X, a.Y)
		case sfnt.SegmentOpQuadTo:
			p0, q, end := p.CurrentPoint(), pt(s.Args[0]), pt(s.Args[1])
			c1 := p0.Add(q.Sub(p0).Mul(2.0 / 3))
			c2 := end.Add(q.Sub(end).Mul(2.0 / 3))
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		case sfnt.SegmentOpCubeTo:
			c1, c2, end := pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2])
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
		}
	}
	if open {
		p.Close()
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

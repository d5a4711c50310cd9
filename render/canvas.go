package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/shapekit"
)

// CanvasRenderer draws scenes onto a gg drawing context.
type CanvasRenderer struct {
	dc   *gg.Context
	opts options
}

// NewCanvasRenderer creates a renderer drawing onto dc.
func NewCanvasRenderer(dc *gg.Context, opts ...Option) *CanvasRenderer {
	return &CanvasRenderer{dc: dc, opts: applyOptions(opts)}
}

// Render draws s onto the context. gg has no blur, so a shadow is built
// from translucent strokes of shrinking width stacked under a fill of the
// offset path.
func (r *CanvasRenderer) Render(s *Scene) error {
	dc := r.dc
	if dc == nil {
		return errors.New("render: nil context")
	}
	if bg := s.Background(); bg != nil {
		dc.ClearWithColor(gg.FromColor(bg))
	}
	dc.SetLineCap(gg.LineCapButt)
	dc.SetLineJoin(gg.LineJoinRound)

	for i, c := range s.Commands() {
		if c.Color == nil {
			continue
		}
		switch c.Op {
		case OpStroke:
			trace(dc, c.Path)
			dc.SetColor(c.Color)
			dc.SetLineWidth(c.Width)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("render: stroke command %d: %w", i, err)
			}
		default:
			if sh := c.Shadow; sh != nil && sh.Color != nil {
				if err := r.shadow(c.Path, *sh); err != nil {
					return fmt.Errorf("render: shadow command %d: %w", i, err)
				}
			}
			trace(dc, c.Path)
			dc.SetColor(c.Color)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("render: fill command %d: %w", i, err)
			}
		}
	}
	return nil
}

func (r *CanvasRenderer) shadow(p *shapekit.Path, sh Shadow) error {
	dc := r.dc
	moved := p.Transform(shapekit.Translate(sh.Dx, sh.Dy))
	steps := r.opts.shadowSteps
	layer := fade(sh.Color, steps+1)
	dc.SetColor(layer)
	for i := range steps {
		trace(dc, moved)
		dc.SetLineWidth(sh.Radius * float64(steps-i) / float64(steps))
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	trace(dc, moved)
	return dc.Fill()
}

// fade divides the alpha of c by n.
func fade(c color.Color, n int) color.Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(int(nc.A) / n)
	return nc
}

// trace replays p onto the context's current path.
func trace(dc *gg.Context, p *shapekit.Path) {
	dc.ClearPath()
	for _, elem := range p.Cubics().Elements() {
		switch e := elem.(type) {
		case shapekit.MoveTo:
			dc.MoveTo(e.Point.X, e.Point.Y)
		case shapekit.LineTo:
			dc.LineTo(e.Point.X, e.Point.Y)
		case shapekit.CubicTo:
			dc.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case shapekit.Close:
			dc.ClosePath()
		}
	}
}

// SavePNG renders s on a new context of the scene size and saves it.
func SavePNG(path string, s *Scene, opts ...Option) error {
	dc := gg.NewContext(s.Width(), s.Height())
	defer dc.Close()
	if err := NewCanvasRenderer(dc, opts...).Render(s); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG renders s on a new context of the scene size and writes it as
// PNG to w.
func EncodePNG(w io.Writer, s *Scene, opts ...Option) error {
	dc := gg.NewContext(s.Width(), s.Height())
	defer dc.Close()
	if err := NewCanvasRenderer(dc, opts...).Render(s); err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

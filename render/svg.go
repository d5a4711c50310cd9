package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/gogpu/shapekit"
)

// PathData returns p in SVG path syntax. Arcs are kept as elliptical arc
// commands, split so no piece sweeps more than 180 degrees.
func PathData(p *shapekit.Path) string {
	var b strings.Builder
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case shapekit.MoveTo:
			writeCmd(&b, 'M', e.Point.X, e.Point.Y)
		case shapekit.LineTo:
			writeCmd(&b, 'L', e.Point.X, e.Point.Y)
		case shapekit.CubicTo:
			writeCmd(&b, 'C', e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case shapekit.ArcTo:
			writeArc(&b, e)
		case shapekit.Close:
			writeCmd(&b, 'Z')
		}
	}
	return b.String()
}

func writeArc(b *strings.Builder, a shapekit.ArcTo) {
	if a.Sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(a.Sweep) / 180))
	step := a.Sweep / float64(n)
	var flag float64 // SVG sweep flag 1 runs clockwise on screen
	if step > 0 {
		flag = 1
	}
	for i := 1; i <= n; i++ {
		end := shapekit.Polar(a.Center, a.Radius, a.Start+step*float64(i))
		writeCmd(b, 'A', a.Radius, a.Radius, 0, 0, flag, end.X, end.Y)
	}
}

func writeCmd(b *strings.Builder, cmd byte, args ...float64) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteByte(cmd)
	for _, v := range args {
		b.WriteByte(' ')
		b.WriteString(formatNumber(v))
	}
}

// formatNumber prints v rounded to 1/1000 without trailing zeros.
func formatNumber(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// hexColor returns c as #rrggbb and its opacity in [0, 1].
func hexColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}

func paintAttrs(kind string, c color.Color) []string {
	hex, alpha := hexColor(c)
	attrs := []string{fmt.Sprintf(`%s="%s"`, kind, hex)}
	if alpha < 1 {
		attrs = append(attrs, fmt.Sprintf(`%s-opacity="%s"`, kind, formatNumber(alpha)))
	}
	return attrs
}

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// SVGRenderer writes scenes as standalone SVG documents.
type SVGRenderer struct {
	w    io.Writer
	opts options
}

// NewSVGRenderer creates a renderer writing to w. Each Render call writes
// one complete document.
func NewSVGRenderer(w io.Writer, opts ...Option) *SVGRenderer {
	return &SVGRenderer{w: w, opts: applyOptions(opts)}
}

// Render writes s as an SVG document. Each filled shadow becomes a blurred
// copy of its path under a gaussian filter.
func (r *SVGRenderer) Render(s *Scene) error {
	ew := &errWriter{w: r.w}
	canvas := svg.New(ew)
	canvas.Start(s.Width(), s.Height())
	if r.opts.title != "" {
		canvas.Title(r.opts.title)
	}

	var shadows int
	for _, c := range s.Commands() {
		if c.Shadow != nil && c.Color != nil {
			shadows++
		}
	}
	if shadows > 0 {
		canvas.Def()
		i := 0
		for _, c := range s.Commands() {
			if c.Shadow == nil || c.Color == nil {
				continue
			}
			canvas.Filter(shadowID(i))
			std := c.Shadow.Radius / 2
			canvas.FeGaussianBlur(svg.Filterspec{In: "SourceGraphic"}, std, std)
			canvas.Fend()
			i++
		}
		canvas.DefEnd()
	}

	if bg := s.Background(); bg != nil {
		canvas.Rect(0, 0, s.Width(), s.Height(), paintAttrs("fill", bg)...)
	}

	shadow := 0
	for _, c := range s.Commands() {
		if c.Color == nil {
			continue
		}
		switch c.Op {
		case OpStroke:
			attrs := append([]string{`fill="none"`}, paintAttrs("stroke", c.Color)...)
			attrs = append(attrs, fmt.Sprintf(`stroke-width="%s"`, formatNumber(c.Width)))
			canvas.Path(PathData(c.Path), attrs...)
		default:
			if sh := c.Shadow; sh != nil {
				if sh.Color != nil {
					moved := c.Path.Transform(shapekit.Translate(sh.Dx, sh.Dy))
					attrs := append(paintAttrs("fill", sh.Color), fmt.Sprintf(`filter="url(#%s)"`, shadowID(shadow)))
					canvas.Path(PathData(moved), attrs...)
				}
				shadow++
			}
			canvas.Path(PathData(c.Path), paintAttrs("fill", c.Color)...)
		}
	}
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("render: write svg: %w", ew.err)
	}
	return nil
}

func shadowID(i int) string {
	return "shadow" + strconv.Itoa(i)
}

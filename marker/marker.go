// Package marker builds corner markers: a right isosceles triangle tucked
// into one corner of a square, with a short label running across it at 45
// degrees.
//
// The triangle fills the largest square that fits inside the padding,
// anchored at the padding's top-left. Its right angle sits in the chosen
// corner of that square and its long side runs between the two adjacent
// corners.
package marker

import (
	"math"

	"github.com/gogpu/shapekit"
)

// Auto marks a length that Resolve derives from the marker size.
const Auto = -1.0

// Derivation ratios for Auto lengths, of min(width, height).
const (
	textRatio   = 42.0 / 179.0
	cornerRatio = 27.0 / 179.0
	cutRatio    = 27.0 / 179.0
)

// Position is the corner the marker occupies.
type Position int

const (
	TopLeft Position = iota
	BottomLeft
	TopRight
	BottomRight
)

// String returns the position name.
func (p Position) String() string {
	switch p {
	case BottomLeft:
		return "bottom-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	default:
		return "top-left"
	}
}

func (p Position) top() bool  { return p == TopLeft || p == TopRight }
func (p Position) left() bool { return p == TopLeft || p == BottomLeft }

// Style selects how the right-angle corner is finished.
type Style int

const (
	// Plain leaves the right angle sharp.
	Plain Style = iota
	// Rounded replaces the right angle with a quarter circle of CornerRadius.
	Rounded
	// Cut removes a smaller copy of the triangle, CutLength along each leg,
	// so the marker reads as a band across the corner.
	Cut
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case Rounded:
		return "rounded"
	case Cut:
		return "cut"
	default:
		return "plain"
	}
}

// Config describes a marker.
type Config struct {
	Width, Height float64
	Padding       shapekit.Insets

	Position Position
	Style    Style

	Text string
	// TextSize is the label size in pixels.
	TextSize float64
	// CornerRadius applies to Rounded, CutLength to Cut.
	CornerRadius float64
	CutLength    float64
	// Offset moves the label along its own vertical axis; positive is down
	// in the rotated text frame.
	Offset float64
}

// NewConfig returns a top-left plain marker of the given size with every
// derivable length set to Auto.
func NewConfig(width, height float64) Config {
	return Config{
		Width:        width,
		Height:       height,
		TextSize:     Auto,
		CornerRadius: Auto,
		CutLength:    Auto,
	}
}

// Resolved is a Config with Auto lengths filled and the triangle placed.
type Resolved struct {
	Config

	// Square is the padded square holding the triangle. It is empty when
	// the padding leaves no room.
	Square shapekit.Rect
}

// Resolve derives Auto lengths from min(Width, Height), padding included,
// and places the triangle square inside the padding. Corner radius and cut
// length are capped at the square side.
func Resolve(c Config) Resolved {
	size := math.Min(c.Width, c.Height)
	if c.TextSize < 0 {
		c.TextSize = textRatio * size
	}
	if c.CornerRadius < 0 {
		c.CornerRadius = cornerRatio * size
	}
	if c.CutLength < 0 {
		c.CutLength = cutRatio * size
	}

	w := math.Max(0, c.Width-c.Padding.Horizontal())
	h := math.Max(0, c.Height-c.Padding.Vertical())
	side := math.Min(w, h)
	c.CornerRadius = math.Min(c.CornerRadius, side)
	c.CutLength = math.Min(c.CutLength, side)

	shapekit.Logger().Debug("marker: resolved",
		"position", c.Position, "style", c.Style,
		"side", side, "text_size", c.TextSize,
		"corner", c.CornerRadius, "cut", c.CutLength)
	return Resolved{
		Config: c,
		Square: shapekit.RectWH(c.Padding.Left, c.Padding.Top, side, side),
	}
}

// vertices returns the right-angle corner and the two corners it connects
// to: across along the horizontal edge, then along the vertical edge.
func (r Resolved) vertices() (corner, across, along shapekit.Point) {
	sq := r.Square
	x, farX := sq.Left, sq.Right
	if !r.Position.left() {
		x, farX = farX, x
	}
	y, farY := sq.Top, sq.Bottom
	if !r.Position.top() {
		y, farY = farY, y
	}
	return shapekit.Pt(x, y), shapekit.Pt(farX, y), shapekit.Pt(x, farY)
}

// toward returns the point d along the segment from p to q.
func toward(p, q shapekit.Point, d float64) shapekit.Point {
	n := p.Distance(q)
	if n == 0 {
		return p
	}
	return p.Add(q.Sub(p).Mul(d / n))
}

// BuildOutline returns the closed marker outline. An empty square yields an
// empty path.
func BuildOutline(r Resolved) *shapekit.Path {
	p := shapekit.NewPath()
	if r.Square.Width() <= 0 {
		return p
	}
	c, a, b := r.vertices()

	switch r.Style {
	case Rounded:
		ca := toward(c, a, r.CornerRadius)
		cb := toward(c, b, r.CornerRadius)
		p.MoveTo(ca.X, ca.Y)
		p.LineTo(a.X, a.Y)
		p.LineTo(b.X, b.Y)
		p.LineTo(cb.X, cb.Y)
		if r.CornerRadius > 0 {
			center := ca.Add(cb).Sub(c)
			start := degrees(cb.Sub(center))
			sweep := math.Remainder(degrees(ca.Sub(center))-start, 360)
			p.ArcTo(center.X, center.Y, r.CornerRadius, start, sweep)
		}
	case Cut:
		ca := toward(c, a, r.CutLength)
		cb := toward(c, b, r.CutLength)
		p.MoveTo(ca.X, ca.Y)
		p.LineTo(a.X, a.Y)
		p.LineTo(b.X, b.Y)
		p.LineTo(cb.X, cb.Y)
	default:
		p.MoveTo(c.X, c.Y)
		p.LineTo(a.X, a.Y)
		p.LineTo(b.X, b.Y)
	}
	p.Close()
	return p
}

func degrees(v shapekit.Point) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// Label returns where the label goes: the midpoint of its baseline and the
// rotation in degrees (clockwise on screen). The baseline crosses the
// median from the right-angle corner three quarters of the way out for top
// markers and halfway for bottom markers, and the text runs parallel to the
// long side.
func Label(r Resolved) (baseline shapekit.Point, angle float64) {
	c, _, _ := r.vertices()
	mid := r.Square.Center()

	frac := 0.5
	if r.Position.top() {
		frac = 0.75
	}
	angle = 45
	if r.Position == TopLeft || r.Position == BottomRight {
		angle = -45
	}
	baseline = c.Add(mid.Sub(c).Mul(frac))
	baseline = baseline.Add(shapekit.Polar(shapekit.Point{}, r.Offset, angle+90))
	return baseline, angle
}

package shapekit

import "math"

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// RectWH creates a Rect from an origin and a size.
func RectWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Inset shrinks the rectangle by the given insets.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
}

// Union returns the smallest rectangle containing r and the point p.
func (r Rect) Union(p Point) Rect {
	return Rect{
		Left:   math.Min(r.Left, p.X),
		Top:    math.Min(r.Top, p.Y),
		Right:  math.Max(r.Right, p.X),
		Bottom: math.Max(r.Bottom, p.Y),
	}
}

// Insets holds per-edge distances, used both for padding and for the
// trailing space a cell reserves for its dividers.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// UniformInsets returns Insets with the same value on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Horizontal returns Left + Right.
func (in Insets) Horizontal() float64 { return in.Left + in.Right }

// Vertical returns Top + Bottom.
func (in Insets) Vertical() float64 { return in.Top + in.Bottom }

// Line is a straight segment between two points.
type Line struct {
	P1, P2 Point
}

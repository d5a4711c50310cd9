package shapekit

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc around Center. Start and Sweep are in degrees;
// a positive Sweep runs clockwise on screen.
type ArcTo struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

func (ArcTo) isPathElement() {}

// StartPoint returns the point where the arc begins.
func (a ArcTo) StartPoint() Point { return Polar(a.Center, a.Radius, a.Start) }

// EndPoint returns the point where the arc ends.
func (a ArcTo) EndPoint() Point { return Polar(a.Center, a.Radius, a.Start+a.Sweep) }

// Oval returns the bounding square of the full circle the arc lies on.
// Hosts whose arc primitive takes an oval plus angles consume this form.
func (a ArcTo) Oval() Rect {
	return Rect{
		Left:   a.Center.X - a.Radius,
		Top:    a.Center.Y - a.Radius,
		Right:  a.Center.X + a.Radius,
		Bottom: a.Center.Y + a.Radius,
	}
}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// ArcTo appends an arc of radius r around (cx, cy) from angle start through
// sweep degrees. If the arc does not begin at the current point, a line to
// its start is inserted first; on an empty path the arc start becomes the
// subpath start.
func (p *Path) ArcTo(cx, cy, r, start, sweep float64) {
	arc := ArcTo{Center: Pt(cx, cy), Radius: r, Start: start, Sweep: sweep}
	from := arc.StartPoint()
	switch {
	case len(p.elements) == 0:
		p.MoveTo(from.X, from.Y)
	case !p.current.Near(from, joinTolerance(arc)):
		p.LineTo(from.X, from.Y)
	}
	p.elements = append(p.elements, arc)
	p.current = arc.EndPoint()
}

// joinTolerance is how far the current point may sit from an arc start and
// still count as on it. It grows with the coordinates, since rounding after
// a Transform grows with them too.
func joinTolerance(a ArcTo) float64 {
	scale := max(1, math.Abs(a.Center.X), math.Abs(a.Center.Y), a.Radius)
	return scale * 1e-9
}

// AddArc starts a new subpath at the arc start and appends the arc.
func (p *Path) AddArc(cx, cy, r, start, sweep float64) {
	from := Polar(Pt(cx, cy), r, start)
	p.MoveTo(from.X, from.Y)
	p.ArcTo(cx, cy, r, start, sweep)
}

// AddCircle adds a closed full circle as a single 360 degree arc.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddArc(cx, cy, r, 0, 360)
	p.Close()
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Transform applies a transformation matrix to all points in the path.
// Arcs keep their circular shape, so m must be a similarity (rotation,
// uniform scale, reflection, translation); a mirroring matrix reverses
// the arc sweep.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	scale := math.Sqrt(math.Abs(m.Determinant()))
	mirror := m.Determinant() < 0
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case ArcTo:
			c := m.TransformPoint(e.Center)
			dir := m.TransformVector(Polar(Point{}, 1, e.Start))
			start := normalizeDegrees(math.Atan2(dir.Y, dir.X) * 180 / math.Pi)
			sweep := e.Sweep
			if mirror {
				sweep = -sweep
			}
			result.ArcTo(c.X, c.Y, e.Radius*scale, start, sweep)
		case Close:
			result.Close()
		}
	}
	return result
}

// RoundedRectangle adds a closed rectangle with rounded corners, running
// clockwise from the top edge.
func (p *Path) RoundedRectangle(x, y, w, h, r float64) {
	// Clamp radius to half of the smaller dimension
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))

	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.ArcTo(x+w-r, y+r, r, 270, 90)
	p.LineTo(x+w, y+h-r)
	p.ArcTo(x+w-r, y+h-r, r, 0, 90)
	p.LineTo(x+r, y+h)
	p.ArcTo(x+r, y+h-r, r, 90, 90)
	p.LineTo(x, y+r)
	p.ArcTo(x+r, y+r, r, 180, 90)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// normalizeDegrees maps an angle into [0, 360). Values within rounding
// distance of 360 snap to 0.
func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg > 360-1e-9 {
		deg = 0
	}
	return deg
}

package shapekit

import "math"

// Path operations for area, bounding box and arc flattening.

// Area returns the signed area enclosed by the path.
// Positive for paths that run clockwise on screen, negative otherwise.
// Only closed subpaths contribute meaningfully to the area.
func (p *Path) Area() float64 {
	var area float64
	var current, start Point

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			start = e.Point
			current = e.Point
		case LineTo:
			area += lineArea(current, e.Point)
			current = e.Point
		case CubicTo:
			area += cubicArea(current, e.Control1, e.Control2, e.Point)
			current = e.Point
		case ArcTo:
			area += arcArea(e)
			current = e.EndPoint()
		case Close:
			area += lineArea(current, start)
			current = start
		}
	}

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
// Uses the shoelace formula: 0.5 * (x0*y1 - x1*y0)
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea computes the contribution of a cubic Bezier to the signed area
// by integrating 0.5*(x*dy - y*dx). The integrand is a degree-5 polynomial,
// so three-point Gauss-Legendre quadrature is exact.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	nodes := [3]float64{0.5 - 0.5*math.Sqrt(0.6), 0.5, 0.5 + 0.5*math.Sqrt(0.6)}
	weights := [3]float64{5.0 / 18.0, 8.0 / 18.0, 5.0 / 18.0}
	var sum float64
	for i, t := range nodes {
		mt := 1 - t
		x := mt*mt*mt*p0.X + 3*mt*mt*t*p1.X + 3*mt*t*t*p2.X + t*t*t*p3.X
		y := mt*mt*mt*p0.Y + 3*mt*mt*t*p1.Y + 3*mt*t*t*p2.Y + t*t*t*p3.Y
		dx := 3*mt*mt*(p1.X-p0.X) + 6*mt*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X)
		dy := 3*mt*mt*(p1.Y-p0.Y) + 6*mt*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y)
		sum += weights[i] * (x*dy - y*dx)
	}
	return 0.5 * sum
}

// arcArea integrates 0.5*(x*dy - y*dx) over a circular arc.
func arcArea(a ArcTo) float64 {
	t1 := a.Start * math.Pi / 180
	t2 := (a.Start + a.Sweep) * math.Pi / 180
	r := a.Radius
	return 0.5 * (r*r*(t2-t1) +
		r*a.Center.X*(math.Sin(t2)-math.Sin(t1)) -
		r*a.Center.Y*(math.Cos(t2)-math.Cos(t1)))
}

// Bounds returns the tight axis-aligned bounding box of the path. Arcs
// contribute their endpoints and every axis extreme they pass through;
// cubic curves contribute their control hull.
func (p *Path) Bounds() Rect {
	if len(p.elements) == 0 {
		return Rect{}
	}

	var bbox Rect
	first := true
	add := func(pt Point) {
		if first {
			bbox = Rect{Left: pt.X, Top: pt.Y, Right: pt.X, Bottom: pt.Y}
			first = false
			return
		}
		bbox = bbox.Union(pt)
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		case ArcTo:
			add(e.StartPoint())
			add(e.EndPoint())
			for _, deg := range arcExtremes(e) {
				add(Polar(e.Center, e.Radius, deg))
			}
		}
	}
	return bbox
}

// arcExtremes returns the multiples of 90 degrees strictly inside the sweep.
func arcExtremes(a ArcTo) []float64 {
	lo, hi := a.Start, a.Start+a.Sweep
	if hi < lo {
		lo, hi = hi, lo
	}
	var out []float64
	for deg := math.Floor(lo/90)*90 + 90; deg < hi; deg += 90 {
		out = append(out, deg)
	}
	return out
}

// Cubics returns a copy of the path where every arc is replaced by cubic
// Bezier segments of at most 90 degrees each. Rasterizers that only know
// lines and cubics consume this form.
func (p *Path) Cubics() *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			result.LineTo(e.Point.X, e.Point.Y)
		case CubicTo:
			result.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case ArcTo:
			result.appendArcCubics(e)
		case Close:
			result.Close()
		}
	}
	return result
}

// appendArcCubics splits the arc into segments of at most 90 degrees.
func (p *Path) appendArcCubics(a ArcTo) {
	if a.Sweep == 0 || a.Radius == 0 {
		end := a.EndPoint()
		p.LineTo(end.X, end.Y)
		return
	}
	const maxAngle = 90.0
	numSegments := int(math.Ceil(math.Abs(a.Sweep) / maxAngle))
	step := a.Sweep / float64(numSegments)
	for i := 0; i < numSegments; i++ {
		a1 := a.Start + float64(i)*step
		p.arcSegment(a.Center.X, a.Center.Y, a.Radius, a1, a1+step)
	}
}

// arcSegment adds a single arc segment (<= 90 degrees) as one cubic.
func (p *Path) arcSegment(cx, cy, r, deg1, deg2 float64) {
	a1 := deg1 * math.Pi / 180
	a2 := deg2 * math.Pi / 180
	// Using the formula from "Drawing an elliptical arc using polylines, quadratic or cubic Bezier curves"
	tan := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*tan*tan) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	if len(p.elements) == 0 || !p.current.Near(Pt(x1, y1), 1e-9) {
		p.LineTo(x1, y1)
	}
	p.CubicTo(x1-alpha*r*sin1, y1+alpha*r*cos1, x2+alpha*r*sin2, y2-alpha*r*cos2, x2, y2)
}

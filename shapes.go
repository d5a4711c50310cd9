package shapekit

// TriangleDirection selects which way an isosceles triangle points.
type TriangleDirection int

const (
	// PointUp places the apex on the top edge, centered horizontally.
	PointUp TriangleDirection = iota
	// PointDown places the apex on the bottom edge.
	PointDown
	// PointLeft places the apex on the left edge, centered vertically.
	PointLeft
	// PointRight places the apex on the right edge.
	PointRight
)

// String returns the direction name.
func (d TriangleDirection) String() string {
	switch d {
	case PointUp:
		return "up"
	case PointDown:
		return "down"
	case PointLeft:
		return "left"
	case PointRight:
		return "right"
	default:
		return "unknown"
	}
}

// Triangle returns a closed isosceles triangle inscribed in r, starting at
// the apex. A rectangle with negative extent collapses to zero size.
func Triangle(r Rect, dir TriangleDirection) *Path {
	if r.Right < r.Left {
		r.Right = r.Left
	}
	if r.Bottom < r.Top {
		r.Bottom = r.Top
	}
	mid := r.Center()

	var pts [3]Point
	switch dir {
	case PointDown:
		pts = [3]Point{Pt(mid.X, r.Bottom), Pt(r.Left, r.Top), Pt(r.Right, r.Top)}
	case PointLeft:
		pts = [3]Point{Pt(r.Left, mid.Y), Pt(r.Right, r.Top), Pt(r.Right, r.Bottom)}
	case PointRight:
		pts = [3]Point{Pt(r.Right, mid.Y), Pt(r.Left, r.Bottom), Pt(r.Left, r.Top)}
	default:
		pts = [3]Point{Pt(mid.X, r.Top), Pt(r.Right, r.Bottom), Pt(r.Left, r.Bottom)}
	}

	return BuildPath().
		MoveTo(pts[0].X, pts[0].Y).
		LineToPt(pts[1]).
		LineToPt(pts[2]).
		Close().
		Build()
}

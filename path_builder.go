// path_builder.go

package shapekit

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// LineToPt draws a line to a point.
func (b *PathBuilder) LineToPt(p Point) *PathBuilder {
	b.path.LineTo(p.X, p.Y)
	return b
}

// ArcTo appends an arc around center c (angles in degrees).
func (b *PathBuilder) ArcTo(c Point, r, start, sweep float64) *PathBuilder {
	b.path.ArcTo(c.X, c.Y, r, start, sweep)
	return b
}

// Corner appends a clockwise quarter arc of radius r around c, starting
// at angle start.
func (b *PathBuilder) Corner(c Point, r, start float64) *PathBuilder {
	return b.ArcTo(c, r, start, 90)
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// RoundRect adds a rounded rectangle to the path.
func (b *PathBuilder) RoundRect(x, y, w, h, r float64) *PathBuilder {
	b.path.RoundedRectangle(x, y, w, h, r)
	return b
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	b.path.AddCircle(cx, cy, r)
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}

package divider

import (
	"fmt"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/grid"
)

// Grid draws dividers between the cells of a grid. Either spec may be nil;
// a nil spec reserves no space, draws nothing, and disables collapsing on
// the other axis.
type Grid struct {
	Column *Spec
	Row    *Spec

	SpanCount   int
	Orientation grid.Orientation
}

// Measurement is the result of the measurement pass for one cell.
type Measurement struct {
	Cell    grid.Cell
	Offsets shapekit.Insets
}

// Validate checks the grid setup before any geometry call.
func (g Grid) Validate(itemCount int) error {
	if err := grid.Validate(itemCount, g.SpanCount); err != nil {
		return fmt.Errorf("divider: %w", err)
	}
	if err := g.Column.Validate(); err != nil {
		return fmt.Errorf("column: %w", err)
	}
	if err := g.Row.Validate(); err != nil {
		return fmt.Errorf("row: %w", err)
	}
	return nil
}

// Measure locates item index and computes its trailing offsets.
func (g Grid) Measure(index, itemCount int) Measurement {
	c := grid.Locate(index, itemCount, g.SpanCount, g.Orientation)
	return Measurement{Cell: c, Offsets: g.Offsets(c)}
}

// Offsets returns the space c reserves for dividers: on the right unless c
// is in the last column, at the bottom unless it is in the last row.
func (g Grid) Offsets(c grid.Cell) shapekit.Insets {
	var in shapekit.Insets
	if !c.LastCol() {
		in.Right = g.Column.horizontalGap()
	}
	if !c.LastRow() {
		in.Bottom = g.Row.verticalGap()
	}
	return in
}

// ColumnLine returns the vertical divider to the right of a cell laid out
// at bounds, or false for the last column.
//
// The vertical clipping margins collapse against the row divider: a
// first-row cell collapses its bottom margin, a last-row cell its top
// margin, and an interior cell both. A single-row grid counts as first.
func (g Grid) ColumnLine(c grid.Cell, bounds shapekit.Rect) (shapekit.Line, bool) {
	s := g.Column
	if s == nil || c.LastCol() {
		return shapekit.Line{}, false
	}
	top, bottom := s.Top, s.Bottom
	if r := g.Row; r != nil {
		switch {
		case c.FirstRow():
			bottom = s.collapse(bottom, r.Top, r.Thickness)
		case c.LastRow():
			top = s.collapse(top, r.Bottom, r.Thickness)
		default:
			top = s.collapse(top, r.Bottom, r.Thickness)
			bottom = s.collapse(bottom, r.Top, r.Thickness)
		}
	}
	x := bounds.Right + s.Left + s.Thickness/2
	return shapekit.Line{
		P1: shapekit.Pt(x, bounds.Top+top),
		P2: shapekit.Pt(x, bounds.Bottom-bottom),
	}, true
}

// RowLine returns the horizontal divider below a cell laid out at bounds,
// or false for the last row. It is the transpose of ColumnLine.
func (g Grid) RowLine(c grid.Cell, bounds shapekit.Rect) (shapekit.Line, bool) {
	s := g.Row
	if s == nil || c.LastRow() {
		return shapekit.Line{}, false
	}
	left, right := s.Left, s.Right
	if col := g.Column; col != nil {
		switch {
		case c.FirstCol():
			right = s.collapse(right, col.Left, col.Thickness)
		case c.LastCol():
			left = s.collapse(left, col.Right, col.Thickness)
		default:
			left = s.collapse(left, col.Right, col.Thickness)
			right = s.collapse(right, col.Left, col.Thickness)
		}
	}
	y := bounds.Bottom + s.Top + s.Thickness/2
	return shapekit.Line{
		P1: shapekit.Pt(bounds.Left+left, y),
		P2: shapekit.Pt(bounds.Right-right, y),
	}, true
}

// Lines returns the strokes for a measured cell: its column divider first,
// then its row divider.
func (g Grid) Lines(m Measurement, bounds shapekit.Rect) []Stroke {
	var out []Stroke
	if l, ok := g.ColumnLine(m.Cell, bounds); ok {
		out = append(out, Stroke{Line: l, Color: g.Column.Color, Thickness: g.Column.Thickness})
	}
	if l, ok := g.RowLine(m.Cell, bounds); ok {
		out = append(out, Stroke{Line: l, Color: g.Row.Color, Thickness: g.Row.Thickness})
	}
	return out
}

// Placement is a measured cell with its laid-out bounds.
type Placement struct {
	Measurement
	Bounds shapekit.Rect
}

// Arrange lays out itemCount cells of cellW x cellH from the origin,
// leaving each cell's measured offsets between it and its neighbors.
func (g Grid) Arrange(itemCount int, cellW, cellH float64) []Placement {
	stepX := cellW + g.Column.horizontalGap()
	stepY := cellH + g.Row.verticalGap()
	out := make([]Placement, itemCount)
	for i := range out {
		m := g.Measure(i, itemCount)
		x := float64(m.Cell.Col) * stepX
		y := float64(m.Cell.Row) * stepY
		out[i] = Placement{Measurement: m, Bounds: shapekit.RectWH(x, y, cellW, cellH)}
	}
	shapekit.Logger().Debug("divider: arranged grid",
		"items", itemCount, "span", g.SpanCount, "orientation", g.Orientation)
	return out
}

// Draw runs both passes over placements and returns every stroke.
func (g Grid) Draw(placements []Placement) []Stroke {
	var out []Stroke
	for _, p := range placements {
		out = append(out, g.Lines(p.Measurement, p.Bounds)...)
	}
	return out
}

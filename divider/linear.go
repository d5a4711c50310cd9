package divider

import (
	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/grid"
)

// Linear draws dividers between the items of a single-axis list. It is a
// grid with one cell across: a divider follows every item but the last,
// and margins are used as given.
type Linear struct {
	Spec        Spec
	Orientation grid.Orientation
}

func (l Linear) grid() Grid {
	s := l.Spec
	g := Grid{SpanCount: 1, Orientation: l.Orientation}
	if l.Orientation == grid.Horizontal {
		g.Column = &s
	} else {
		g.Row = &s
	}
	return g
}

// Validate checks the list setup.
func (l Linear) Validate(itemCount int) error {
	return l.grid().Validate(itemCount)
}

// Measure returns the position and trailing offset of item index.
func (l Linear) Measure(index, itemCount int) Measurement {
	return l.grid().Measure(index, itemCount)
}

// Lines returns the divider after a measured item, if any.
func (l Linear) Lines(m Measurement, bounds shapekit.Rect) []Stroke {
	return l.grid().Lines(m, bounds)
}

// Arrange lays out itemCount items of itemW x itemH along the list axis.
func (l Linear) Arrange(itemCount int, itemW, itemH float64) []Placement {
	return l.grid().Arrange(itemCount, itemW, itemH)
}

// Draw returns the strokes for every placement.
func (l Linear) Draw(placements []Placement) []Stroke {
	return l.grid().Draw(placements)
}

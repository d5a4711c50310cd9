// Package divider computes the space reserved between list or grid cells
// and the divider lines drawn in it.
//
// Work happens in two passes. Measure runs while cells are being sized and
// returns a Measurement holding the cell position and its trailing offsets.
// Lines runs at draw time and takes that same Measurement back together
// with the cell's laid-out bounds. The measurement is never recomputed in
// the draw pass, so both passes agree even if the item count changes
// between them.
package divider

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/shapekit"
)

// ErrThickness is returned by Validate for a negative thickness or margin.
var ErrThickness = errors.New("divider: negative thickness or margin")

// Spec describes one family of divider lines.
//
// A column divider is a vertical line in the gap to the right of a cell;
// it reserves Left+Thickness+Right horizontally and is clipped vertically
// by Top and Bottom. A row divider is the transpose.
//
// A zero clipping margin on a grid edge next to a companion divider is
// collapsed so the line runs to the middle of that companion line. Set
// Literal to keep zero margins as given.
type Spec struct {
	Color     color.Color
	Thickness float64

	Left, Right, Top, Bottom float64

	Literal bool
}

// Validate reports negative sizes.
func (s *Spec) Validate() error {
	if s == nil {
		return nil
	}
	for _, v := range []float64{s.Thickness, s.Left, s.Right, s.Top, s.Bottom} {
		if v < 0 {
			return fmt.Errorf("%w: %v", ErrThickness, v)
		}
	}
	return nil
}

// horizontalGap is the width a column divider reserves.
func (s *Spec) horizontalGap() float64 {
	if s == nil {
		return 0
	}
	return s.Left + s.Thickness + s.Right
}

// verticalGap is the height a row divider reserves.
func (s *Spec) verticalGap() float64 {
	if s == nil {
		return 0
	}
	return s.Top + s.Thickness + s.Bottom
}

// collapse returns margin, or the negated distance from the cell edge to
// the middle of the companion line when margin is zero and s allows it.
func (s *Spec) collapse(margin, companionMargin, companionThickness float64) float64 {
	if margin != 0 || s.Literal {
		return margin
	}
	return -(companionMargin + companionThickness/2)
}

// Stroke is a divider line ready to draw.
type Stroke struct {
	shapekit.Line
	Color     color.Color
	Thickness float64
}

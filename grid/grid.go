// Package grid maps a flat item index onto the cells of a fixed-span grid.
//
// A Vertical grid fills row by row with SpanCount columns; a Horizontal grid
// fills column by column with SpanCount rows. Staggered grids use the same
// mapping.
package grid

import (
	"errors"
	"fmt"
)

// ErrSpanCount is returned by Validate for a non-positive span count.
var ErrSpanCount = errors.New("grid: span count must be positive")

// ErrItemCount is returned by Validate for a negative item count.
var ErrItemCount = errors.New("grid: item count must not be negative")

// Orientation is the scroll axis of a grid or list.
type Orientation int

const (
	// Vertical lays items out in rows of SpanCount columns (row-major).
	Vertical Orientation = iota
	// Horizontal lays items out in columns of SpanCount rows (column-major).
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Cell is the position of one item in a grid. It is computed during the
// measurement pass and handed back unchanged to the draw pass.
type Cell struct {
	Row, Col             int
	TotalRows, TotalCols int
}

// Locate returns the cell of item index in a grid of itemCount items with
// spanCount cells across the fixed axis.
//
// spanCount must be positive; use Validate at setup time.
func Locate(index, itemCount, spanCount int, o Orientation) Cell {
	lines := ceilDiv(itemCount, spanCount)
	if o == Horizontal {
		return Cell{
			Row:       index % spanCount,
			Col:       index / spanCount,
			TotalRows: spanCount,
			TotalCols: lines,
		}
	}
	return Cell{
		Row:       index / spanCount,
		Col:       index % spanCount,
		TotalRows: lines,
		TotalCols: spanCount,
	}
}

// Index reconstructs the flat item index of c.
func (c Cell) Index(o Orientation) int {
	if o == Horizontal {
		return c.Col*c.TotalRows + c.Row
	}
	return c.Row*c.TotalCols + c.Col
}

// FirstRow reports whether c is in the first row.
func (c Cell) FirstRow() bool { return c.Row == 0 }

// LastRow reports whether c is in the last row.
func (c Cell) LastRow() bool { return c.Row == c.TotalRows-1 }

// FirstCol reports whether c is in the first column.
func (c Cell) FirstCol() bool { return c.Col == 0 }

// LastCol reports whether c is in the last column.
func (c Cell) LastCol() bool { return c.Col == c.TotalCols-1 }

// Validate checks the preconditions of Locate.
func Validate(itemCount, spanCount int) error {
	if spanCount <= 0 {
		return fmt.Errorf("%w: %d", ErrSpanCount, spanCount)
	}
	if itemCount < 0 {
		return fmt.Errorf("%w: %d", ErrItemCount, itemCount)
	}
	return nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Package flow lays out items of differing sizes in lines that wrap when
// the main axis is full, like words in a paragraph.
//
// Layout runs in two steps. Measure breaks the items into lines and
// reports the size the whole block needs; Place turns that Result into
// item rectangles. The Result is plain data and can be kept between the
// two calls.
package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/grid"
)

// ErrNegativeSpace is returned by Validate for negative spacing.
var ErrNegativeSpace = errors.New("flow: negative spacing")

// Gravity aligns items across the line they sit on.
type Gravity int

const (
	// Center centers an item in the line's cross extent.
	Center Gravity = iota
	// Start aligns to the top of a row or the left of a column.
	Start
	// End aligns to the bottom of a row or the right of a column.
	End
)

// Layout configures a flow. A Vertical flow fills rows left to right and
// grows downward; a Horizontal flow fills columns top to bottom and grows
// rightward.
type Layout struct {
	Orientation grid.Orientation
	Gravity     Gravity

	// RowSpace is the vertical gap between neighbors, ColumnSpace the
	// horizontal one, whichever axis the lines run along.
	RowSpace    float64
	ColumnSpace float64

	Padding shapekit.Insets
}

// Item is one child of the flow.
type Item struct {
	Width, Height float64
	Margin        shapekit.Insets
}

// Line is a run of consecutive items sharing one row or column.
type Line struct {
	Start, Count int
	// Main is the extent along the line, spacing included. Cross is the
	// largest item extent across it, margins included.
	Main, Cross float64
}

// Result is the outcome of Measure.
type Result struct {
	// Width and Height include padding.
	Width, Height float64
	Lines         []Line
}

// Validate reports negative spacing.
func (l Layout) Validate() error {
	if l.RowSpace < 0 || l.ColumnSpace < 0 {
		return fmt.Errorf("%w: row %v, column %v", ErrNegativeSpace, l.RowSpace, l.ColumnSpace)
	}
	return nil
}

// axes returns an item's outer extent along and across the lines.
func (l Layout) axes(it Item) (main, cross float64) {
	w := it.Width + it.Margin.Horizontal()
	h := it.Height + it.Margin.Vertical()
	if l.Orientation == grid.Horizontal {
		return h, w
	}
	return w, h
}

// spaces returns the gap between items on a line and between lines.
func (l Layout) spaces() (main, cross float64) {
	if l.Orientation == grid.Horizontal {
		return l.RowSpace, l.ColumnSpace
	}
	return l.ColumnSpace, l.RowSpace
}

// Measure breaks items into lines within a box of availW x availH
// (padding included). Only the main-axis extent limits a line; the block
// grows freely on the cross axis. An item wraps to a new line when it is
// not first on its line and would overflow it. An item larger than the
// available extent gets a line of its own.
func (l Layout) Measure(items []Item, availW, availH float64) Result {
	avail := availW - l.Padding.Horizontal()
	if l.Orientation == grid.Horizontal {
		avail = availH - l.Padding.Vertical()
	}
	mainSpace, crossSpace := l.spaces()

	var lines []Line
	cur := Line{}
	for i, it := range items {
		main, cross := l.axes(it)
		if cur.Count > 0 && cur.Main+mainSpace+main > avail {
			lines = append(lines, cur)
			cur = Line{Start: i}
		}
		if cur.Count > 0 {
			cur.Main += mainSpace
		}
		cur.Main += main
		cur.Cross = math.Max(cur.Cross, cross)
		cur.Count++
	}
	if cur.Count > 0 {
		lines = append(lines, cur)
	}

	var mainExtent, crossExtent float64
	for i, ln := range lines {
		mainExtent = math.Max(mainExtent, ln.Main)
		if i > 0 {
			crossExtent += crossSpace
		}
		crossExtent += ln.Cross
	}

	r := Result{Lines: lines}
	if l.Orientation == grid.Horizontal {
		r.Width, r.Height = crossExtent, mainExtent
	} else {
		r.Width, r.Height = mainExtent, crossExtent
	}
	r.Width += l.Padding.Horizontal()
	r.Height += l.Padding.Vertical()

	shapekit.Logger().Debug("flow: measured",
		"items", len(items), "lines", len(lines),
		"width", r.Width, "height", r.Height)
	return r
}

// Place returns the rectangle of every item, margins excluded, in the
// coordinate space of the block's top-left corner. items must be the slice
// r was measured from.
func (l Layout) Place(items []Item, r Result) []shapekit.Rect {
	out := make([]shapekit.Rect, len(items))
	mainSpace, crossSpace := l.spaces()

	var lineOffset float64
	for _, ln := range r.Lines {
		var pos float64
		for i := ln.Start; i < ln.Start+ln.Count; i++ {
			it := items[i]
			main, cross := l.axes(it)

			var shift float64
			switch l.Gravity {
			case Start:
			case End:
				shift = ln.Cross - cross
			default:
				shift = (ln.Cross - cross) / 2
			}

			x, y := pos, lineOffset+shift
			if l.Orientation == grid.Horizontal {
				x, y = y, x
			}
			x += l.Padding.Left + it.Margin.Left
			y += l.Padding.Top + it.Margin.Top
			out[i] = shapekit.RectWH(x, y, it.Width, it.Height)

			pos += main + mainSpace
		}
		lineOffset += ln.Cross + crossSpace
	}
	return out
}

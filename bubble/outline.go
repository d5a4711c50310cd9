package bubble

import (
	"math"

	"github.com/gogpu/shapekit"
)

// BuildOutline returns the closed bubble outline for r. The path starts at
// the arrow tip and runs clockwise on screen: the first arrow flank, the
// edge to the first corner, four edge-plus-quarter-arc pairs, the edge back
// to the second flank, and the flank up to the tip.
//
// Geometry is not validated. A corner radius larger than half the body or
// an arrow wider than its edge produces a self-intersecting outline; such
// configurations are logged at warn level.
func BuildOutline(r Resolved) *shapekit.Path {
	body := r.Body()
	frame, length, depth, offset := arrowFrame(r, body)

	warnOverlap(r, length, depth)

	local := arrowUpOutline(length, depth, offset, r.ArrowWidth, r.ArrowHeight, r.CornerRadius)
	return local.Transform(frame)
}

// arrowFrame returns the transform from the arrow-up local frame to the
// screen, along with the body extent along the arrow edge (length), across
// it (depth), and the tip offset measured in the local frame.
//
// In the local frame u runs along the arrow edge and v points into the
// body; the arrow tip sits at (offset, 0). Each direction is a quarter turn
// of that frame anchored at a body corner.
func arrowFrame(r Resolved, body shapekit.Rect) (m shapekit.Matrix, length, depth, offset float64) {
	w, h := body.Width(), body.Height()
	switch r.Direction {
	case Right:
		// u down the right edge, v leftward.
		return shapekit.Translate(body.Right, body.Top).Multiply(shapekit.QuarterTurn(1)), h, w, r.ArrowOffset
	case Bottom:
		// u leftward along the bottom edge, v upward.
		return shapekit.Translate(body.Right, body.Bottom).Multiply(shapekit.QuarterTurn(2)), w, h, w - r.ArrowOffset
	case Left:
		// u up the left edge, v rightward.
		return shapekit.Translate(body.Left, body.Bottom).Multiply(shapekit.QuarterTurn(3)), h, w, h - r.ArrowOffset
	default:
		return shapekit.Translate(body.Left, body.Top), w, h, r.ArrowOffset
	}
}

// arrowUpOutline builds the outline with the arrow on the top edge of a
// length x depth body whose top-left corner is the origin.
func arrowUpOutline(length, depth, offset, arrowW, arrowH, radius float64) *shapekit.Path {
	top := arrowH // body edge below the arrow
	half := arrowW / 2
	return shapekit.BuildPath().
		MoveTo(offset, 0).
		LineTo(offset+half, top).
		LineTo(length-radius, top).
		Corner(shapekit.Pt(length-radius, top+radius), radius, 270).
		LineTo(length, depth-radius).
		Corner(shapekit.Pt(length-radius, depth-radius), radius, 0).
		LineTo(radius, depth).
		Corner(shapekit.Pt(radius, depth-radius), radius, 90).
		LineTo(0, top+radius).
		Corner(shapekit.Pt(radius, top+radius), radius, 180).
		LineTo(offset-half, top).
		LineTo(offset, 0).
		Close().
		Build()
}

func warnOverlap(r Resolved, length, depth float64) {
	minSide := math.Min(length, depth-r.ArrowHeight)
	if 2*r.CornerRadius > minSide {
		shapekit.Logger().Warn("bubble: corner radius exceeds half the body, outline will self-intersect",
			"corner", r.CornerRadius, "min_side", minSide)
	}
	if r.ArrowWidth > length-2*r.CornerRadius {
		shapekit.Logger().Warn("bubble: arrow wider than its edge, outline will self-intersect",
			"arrow_w", r.ArrowWidth, "edge", length-2*r.CornerRadius)
	}
}

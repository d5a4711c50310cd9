package bubble

import (
	"math"

	"github.com/gogpu/shapekit"
)

// Measure sizes a bubble around a content block of contentW x contentH
// with the given padding. Auto corner and shadow radii are derived from the
// padded content, the shadow inset is added on every side, and the arrow
// (derived from the resulting side it sits on) is added on its axis. The
// returned config has BoxWidth and BoxHeight set and those derived lengths
// fixed, so Resolve keeps them; ArrowOffset stays as given.
func Measure(contentW, contentH float64, padding shapekit.Insets, c Config) Config {
	w := contentW + padding.Horizontal()
	h := contentH + padding.Vertical()

	if c.CornerRadius < 0 {
		c.CornerRadius = cornerRatio * math.Min(w, h)
	}
	if c.Shadow.Enabled {
		if c.Shadow.Radius < 0 {
			c.Shadow.Radius = shadowRatio * math.Max(w, h)
		}
		w += 2 * c.Shadow.Radius
		h += 2 * c.Shadow.Radius
	}

	side := h
	if c.Direction.vertical() {
		side = w
	}
	if c.ArrowWidth < 0 {
		c.ArrowWidth = arrowRatio * side
	}
	if c.ArrowHeight < 0 {
		c.ArrowHeight = arrowRatio * side
	}
	if c.Direction.vertical() {
		h += c.ArrowHeight
	} else {
		w += c.ArrowHeight
	}

	c.BoxWidth = w
	c.BoxHeight = h
	return c
}

// ContentRect returns the area left for content inside a resolved bubble:
// the shadow-inset body minus the arrow on its side, minus padding.
func ContentRect(r Resolved, padding shapekit.Insets) shapekit.Rect {
	area := r.Body()
	switch r.Direction {
	case Top:
		area.Top += r.ArrowHeight
	case Bottom:
		area.Bottom -= r.ArrowHeight
	case Left:
		area.Left += r.ArrowHeight
	case Right:
		area.Right -= r.ArrowHeight
	}
	return area.Inset(padding)
}

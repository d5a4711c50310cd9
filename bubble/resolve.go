package bubble

import (
	"image/color"
	"math"

	"github.com/gogpu/shapekit"
)

// Resolved is a Config with every Auto field replaced by a concrete value.
type Resolved struct {
	Width, Height           float64
	ArrowWidth, ArrowHeight float64
	Direction               Direction
	ArrowOffset             float64
	CornerRadius            float64

	// ShadowRadius is 0 when the shadow is disabled.
	ShadowRadius  float64
	ShadowDx      float64
	ShadowDy      float64
	ShadowColor   color.Color
	ShadowEnabled bool
}

// Resolve fills Auto fields in dependency order: the box size drives the
// corner and shadow radii, then the arrow size (from the box side the arrow
// sits on), then the arrow offset (the middle of that side). An auto offset
// is finally pulled back by the shadow radius when the shadow is enabled,
// because the outline is drawn inside the shadow inset.
func Resolve(c Config) Resolved {
	w, h := c.BoxWidth, c.BoxHeight
	r := Resolved{
		Width:        w,
		Height:       h,
		Direction:    c.Direction,
		ArrowWidth:   c.ArrowWidth,
		ArrowHeight:  c.ArrowHeight,
		ArrowOffset:  c.ArrowOffset,
		CornerRadius: c.CornerRadius,
	}

	if r.CornerRadius < 0 {
		r.CornerRadius = cornerRatio * math.Min(w, h)
	}
	if c.Shadow.Enabled {
		r.ShadowEnabled = true
		r.ShadowRadius = c.Shadow.Radius
		if r.ShadowRadius < 0 {
			r.ShadowRadius = shadowRatio * math.Max(w, h)
		}
		r.ShadowDx = c.Shadow.Dx
		r.ShadowDy = c.Shadow.Dy
		r.ShadowColor = c.Shadow.Color
		if r.ShadowColor == nil {
			r.ShadowColor = DefaultShadowColor
		}
	}

	side := h
	if c.Direction.vertical() {
		side = w
	}
	if r.ArrowWidth < 0 {
		r.ArrowWidth = arrowRatio * side
	}
	if r.ArrowHeight < 0 {
		r.ArrowHeight = arrowRatio * side
	}
	if r.ArrowOffset < 0 {
		r.ArrowOffset = side / 2
		if r.ShadowEnabled {
			r.ArrowOffset -= r.ShadowRadius
		}
	}

	shapekit.Logger().Debug("bubble: resolved",
		"direction", r.Direction,
		"width", w, "height", h,
		"corner", r.CornerRadius,
		"arrow_w", r.ArrowWidth, "arrow_h", r.ArrowHeight,
		"offset", r.ArrowOffset,
		"shadow", r.ShadowRadius)
	return r
}

// Body returns the box with the shadow inset removed on every side. The
// outline, arrow included, lies inside it.
func (r Resolved) Body() shapekit.Rect {
	s := r.ShadowRadius
	return shapekit.Rect{Left: s, Top: s, Right: r.Width - s, Bottom: r.Height - s}
}

// ShadowLayer returns the shadow to apply to the filled outline, and false
// when the shadow is disabled.
func (r Resolved) ShadowLayer() (Shadow, bool) {
	if !r.ShadowEnabled {
		return Shadow{}, false
	}
	return Shadow{
		Enabled: true,
		Radius:  r.ShadowRadius,
		Dx:      r.ShadowDx,
		Dy:      r.ShadowDy,
		Color:   r.ShadowColor,
	}, true
}

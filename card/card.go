// Package card lays out a single content block on a rounded rectangle with
// an optional blurred drop shadow.
//
// The shadow needs room to spread, so an enabled shadow reserves
// ShadowRadius on every side: Measure grows the card by it, Layout moves the
// content inward by it, and Outline draws the card inside it.
package card

import (
	"image/color"

	"github.com/gogpu/shapekit"
)

// DefaultShadowRadius is the shadow radius of NewConfig.
const DefaultShadowRadius = 10.0

// DefaultShadowColor is the mid gray used when Config.ShadowColor is nil.
var DefaultShadowColor = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}

// Config describes a card.
type Config struct {
	CornerRadius float64

	ShadowEnabled bool
	ShadowRadius  float64
	ShadowDx      float64
	ShadowDy      float64
	ShadowColor   color.Color
}

// NewConfig returns a square-cornered card with the default shadow enabled.
func NewConfig() Config {
	return Config{
		ShadowEnabled: true,
		ShadowRadius:  DefaultShadowRadius,
		ShadowColor:   DefaultShadowColor,
	}
}

// inset is the space the shadow reserves on each side.
func (c Config) inset() float64 {
	if !c.ShadowEnabled || c.ShadowRadius < 0 {
		return 0
	}
	return c.ShadowRadius
}

// Measure returns the card size needed for a content block of
// contentW x contentH with the given content margin and card padding.
func Measure(contentW, contentH float64, margin, padding shapekit.Insets, c Config) (w, h float64) {
	s := 2 * c.inset()
	w = contentW + margin.Horizontal() + padding.Horizontal() + s
	h = contentH + margin.Vertical() + padding.Vertical() + s
	return w, h
}

// Layout returns where the content block goes inside the card: past the
// padding, the margin and the shadow inset, at its measured size.
func Layout(contentW, contentH float64, margin, padding shapekit.Insets, c Config) shapekit.Rect {
	s := c.inset()
	return shapekit.RectWH(padding.Left+margin.Left+s, padding.Top+margin.Top+s, contentW, contentH)
}

// Outline returns the card background for a card of width x height. The
// rectangle is inset by the shadow radius when the shadow is enabled and
// covers the whole card otherwise.
func Outline(width, height float64, c Config) *shapekit.Path {
	s := c.inset()
	p := shapekit.NewPath()
	w, h := width-2*s, height-2*s
	if w <= 0 || h <= 0 {
		return p
	}
	p.RoundedRectangle(s, s, w, h, c.CornerRadius)
	return p
}

// Shadow is a blurred copy of the outline drawn beneath it.
type Shadow struct {
	Radius float64
	Dx, Dy float64
	Color  color.Color
}

// ShadowLayer returns the shadow to apply to the outline, and false when
// the shadow is disabled.
func (c Config) ShadowLayer() (Shadow, bool) {
	if c.inset() == 0 {
		return Shadow{}, false
	}
	col := c.ShadowColor
	if col == nil {
		col = DefaultShadowColor
	}
	return Shadow{Radius: c.ShadowRadius, Dx: c.ShadowDx, Dy: c.ShadowDy, Color: col}, true
}

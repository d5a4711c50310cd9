// Package bubble builds the outline of a speech-bubble background: a
// rounded rectangle with a triangular arrow on one side.
//
// Fields set to Auto are derived from the box size by Resolve. The outline
// itself is produced by a single routine in an arrow-up local frame and
// rotated onto the requested side.
package bubble

import (
	"image/color"
)

// Auto marks a length that Resolve derives from the box size.
const Auto = -1.0

// Derivation ratios for Auto fields.
const (
	arrowRatio  = 2.0 / 9.0  // of the box side the arrow sits on
	cornerRatio = 1.0 / 18.0 // of min(width, height)
	shadowRatio = 7.0 / 90.0 // of max(width, height)
)

// Direction is the side of the box the arrow points out of.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "top"
	}
}

// vertical reports whether the arrow sits on a horizontal edge, so its
// base runs along the box width.
func (d Direction) vertical() bool {
	return d == Top || d == Bottom
}

// Shadow describes a blurred drop shadow applied once to the whole outline.
type Shadow struct {
	Enabled bool
	Radius  float64 // blur radius and inset on every side; Auto derives it
	Dx, Dy  float64
	Color   color.Color
}

// DefaultShadowColor is the light gray used when Shadow.Color is nil.
var DefaultShadowColor = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

// Config describes a bubble.
type Config struct {
	BoxWidth, BoxHeight float64

	// ArrowWidth is the arrow base, ArrowHeight how far it protrudes.
	ArrowWidth, ArrowHeight float64
	Direction               Direction
	// ArrowOffset is the distance of the arrow tip from the left edge (Top,
	// Bottom) or the top edge (Left, Right) of the shadow-inset body.
	ArrowOffset float64

	CornerRadius float64
	Shadow       Shadow
}

// NewConfig returns a config for a box of the given size with every
// derivable length set to Auto and the arrow on top.
func NewConfig(width, height float64) Config {
	return Config{
		BoxWidth:     width,
		BoxHeight:    height,
		ArrowWidth:   Auto,
		ArrowHeight:  Auto,
		ArrowOffset:  Auto,
		CornerRadius: Auto,
		Shadow:       Shadow{Radius: Auto},
	}
}

package ring

import (
	"math"

	"github.com/gogpu/shapekit"
)

// SweepAngle returns the arc length in degrees for the current progress:
// current*360/total, negated for CounterClockwise. A zero total yields 0.
func SweepAngle(c Config) float64 {
	if c.total == 0 {
		return 0
	}
	deg := c.current * 360 / c.total
	if c.Direction == CounterClockwise {
		return -deg
	}
	return deg
}

// ArcStart returns the angle in degrees of the start position on screen:
// Top -90, Bottom 90, Left 180, Right 0.
func ArcStart(p StartPosition) float64 {
	switch p {
	case Bottom:
		return 90
	case Left:
		return 180
	case Right:
		return 0
	default:
		return -90
	}
}

// Geometry is everything a host needs to draw a ring into a view.
type Geometry struct {
	Size      float64 // side of the square the ring occupies
	Thickness float64
	TextSize  float64

	Center Point
	Radius float64 // stroke centerline radius

	// Arc is the progress arc; Arc.Oval() is the host-facing bounding box.
	Arc shapekit.ArcTo
	// StartPoint is where the progress arc begins.
	StartPoint Point

	Background *shapekit.Path // full circle, to be stroked
	Progress   *shapekit.Path // progress arc, to be stroked
}

// Point is re-exported for convenience.
type Point = shapekit.Point

// Layout computes the ring geometry for a view of the given size. The ring
// is a square of side min(width, height) anchored at the origin; the stroke
// is inset by half its thickness so it stays inside the square.
func Layout(c Config, width, height float64) Geometry {
	size := math.Min(width, height)
	thickness := c.Thickness
	if thickness == 0 {
		thickness = size / 15
	}
	textSize := c.TextSize
	if textSize == 0 {
		textSize = size / 2.2
	}

	center := shapekit.Pt(size/2, size/2)
	radius := size/2 - thickness/2

	arc := shapekit.ArcTo{
		Center: center,
		Radius: radius,
		Start:  ArcStart(c.Start),
		Sweep:  SweepAngle(c),
	}

	bg := shapekit.NewPath()
	bg.AddCircle(center.X, center.Y, radius)

	progress := shapekit.NewPath()
	progress.AddArc(center.X, center.Y, radius, arc.Start, arc.Sweep)

	return Geometry{
		Size:       size,
		Thickness:  thickness,
		TextSize:   textSize,
		Center:     center,
		Radius:     radius,
		Arc:        arc,
		StartPoint: arc.StartPoint(),
		Background: bg,
		Progress:   progress,
	}
}

package scene

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/bubble"
	"github.com/gogpu/shapekit/flow"
	"github.com/gogpu/shapekit/grid"
	"github.com/gogpu/shapekit/marker"
	"github.com/gogpu/shapekit/ring"
)

func unknown(kind, name string) error {
	return fmt.Errorf("%w: unknown %s %q", ErrInvalid, kind, name)
}

func ringDirection(s string) (ring.Direction, error) {
	switch s {
	case "", "cw", "clockwise":
		return ring.Clockwise, nil
	case "ccw", "counterclockwise":
		return ring.CounterClockwise, nil
	}
	return 0, unknown("ring direction", s)
}

func ringStart(s string) (ring.StartPosition, error) {
	switch s {
	case "", "top":
		return ring.Top, nil
	case "bottom":
		return ring.Bottom, nil
	case "left":
		return ring.Left, nil
	case "right":
		return ring.Right, nil
	}
	return 0, unknown("ring start", s)
}

func ringType(s string) (ring.ProgressType, error) {
	switch s {
	case "", "percent":
		return ring.Percent, nil
	case "value":
		return ring.Value, nil
	}
	return 0, unknown("progress type", s)
}

func bubbleDirection(s string) (bubble.Direction, error) {
	switch s {
	case "", "top":
		return bubble.Top, nil
	case "bottom":
		return bubble.Bottom, nil
	case "left":
		return bubble.Left, nil
	case "right":
		return bubble.Right, nil
	}
	return 0, unknown("arrow direction", s)
}

func orientation(s string) (grid.Orientation, error) {
	switch s {
	case "", "vertical":
		return grid.Vertical, nil
	case "horizontal":
		return grid.Horizontal, nil
	}
	return 0, unknown("orientation", s)
}

func gravity(s string) (flow.Gravity, error) {
	switch s {
	case "", "center":
		return flow.Center, nil
	case "start":
		return flow.Start, nil
	case "end":
		return flow.End, nil
	}
	return 0, unknown("gravity", s)
}

func triangleDirection(s string) (shapekit.TriangleDirection, error) {
	switch s {
	case "", "up":
		return shapekit.PointUp, nil
	case "down":
		return shapekit.PointDown, nil
	case "left":
		return shapekit.PointLeft, nil
	case "right":
		return shapekit.PointRight, nil
	}
	return 0, unknown("triangle direction", s)
}

func markerPosition(s string) (marker.Position, error) {
	switch s {
	case "", "top-left":
		return marker.TopLeft, nil
	case "top-right":
		return marker.TopRight, nil
	case "bottom-left":
		return marker.BottomLeft, nil
	case "bottom-right":
		return marker.BottomRight, nil
	}
	return 0, unknown("marker corner", s)
}

func markerStyle(s string) (marker.Style, error) {
	switch s {
	case "", "plain":
		return marker.Plain, nil
	case "rounded":
		return marker.Rounded, nil
	case "cut":
		return marker.Cut, nil
	}
	return 0, unknown("marker style", s)
}

func ringLanguage(s string) (language.Tag, error) {
	if s == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w: language %q: %w", ErrInvalid, s, err)
	}
	return tag, nil
}

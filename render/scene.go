package render

import (
	"image/color"
	"math"

	"github.com/gogpu/shapekit"
)

// Op is the kind of a drawing command.
type Op uint8

const (
	// OpFill fills a path with the nonzero winding rule.
	OpFill Op = iota
	// OpStroke strokes a path centered on its outline with butt caps.
	OpStroke
)

// String returns the op name.
func (op Op) String() string {
	if op == OpStroke {
		return "stroke"
	}
	return "fill"
}

// Shadow is a blurred copy of a filled path drawn beneath it.
type Shadow struct {
	Radius float64 // blur radius
	Dx, Dy float64
	Color  color.Color
}

// Command is one recorded drawing operation.
type Command struct {
	Op    Op
	Path  *shapekit.Path
	Color color.Color
	Width float64 // stroke width, unused for fills

	// Shadow, when non-nil, is drawn once for the whole path before it.
	Shadow *Shadow
}

// Scene is an ordered list of drawing commands over a fixed-size canvas.
type Scene struct {
	width, height int
	background    color.Color
	commands      []Command
}

// NewScene creates an empty scene of the given pixel size.
func NewScene(width, height int) *Scene {
	return &Scene{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 16),
	}
}

// Width returns the canvas width.
func (s *Scene) Width() int { return s.width }

// Height returns the canvas height.
func (s *Scene) Height() int { return s.height }

// SetBackground sets the color the canvas is cleared to. Nil leaves it
// transparent.
func (s *Scene) SetBackground(c color.Color) {
	s.background = c
}

// Background returns the clear color, or nil.
func (s *Scene) Background() color.Color {
	return s.background
}

// Fill records a fill of p.
func (s *Scene) Fill(p *shapekit.Path, c color.Color) {
	s.commands = append(s.commands, Command{Op: OpFill, Path: p, Color: c})
}

// FillShadow records a fill of p with a shadow beneath it.
func (s *Scene) FillShadow(p *shapekit.Path, c color.Color, sh Shadow) {
	s.commands = append(s.commands, Command{Op: OpFill, Path: p, Color: c, Shadow: &sh})
}

// Stroke records a stroke of p.
func (s *Scene) Stroke(p *shapekit.Path, c color.Color, width float64) {
	s.commands = append(s.commands, Command{Op: OpStroke, Path: p, Color: c, Width: width})
}

// StrokeLine records a stroke of a single segment.
func (s *Scene) StrokeLine(l shapekit.Line, c color.Color, width float64) {
	p := shapekit.NewPath()
	p.MoveTo(l.P1.X, l.P1.Y)
	p.LineTo(l.P2.X, l.P2.Y)
	s.Stroke(p, c, width)
}

// Commands returns the recorded commands in drawing order.
func (s *Scene) Commands() []Command {
	return s.commands
}

// IsEmpty reports whether no commands have been recorded.
func (s *Scene) IsEmpty() bool {
	return len(s.commands) == 0
}

// CommandCount returns the number of recorded commands.
func (s *Scene) CommandCount() int {
	return len(s.commands)
}

// Reset removes all commands and the background, keeping the size.
func (s *Scene) Reset() {
	s.commands = s.commands[:0]
	s.background = nil
}

// Bounds returns the area touched by the recorded commands, stroke width
// and shadow extent included. An empty scene has zero bounds.
func (s *Scene) Bounds() shapekit.Rect {
	var out shapekit.Rect
	first := true
	for _, c := range s.commands {
		b := c.Path.Bounds()
		if c.Op == OpStroke {
			b = b.Inset(shapekit.UniformInsets(-c.Width / 2))
		}
		if sh := c.Shadow; sh != nil {
			sb := b.Inset(shapekit.UniformInsets(-sh.Radius))
			sb = shapekit.Rect{Left: sb.Left + sh.Dx, Top: sb.Top + sh.Dy, Right: sb.Right + sh.Dx, Bottom: sb.Bottom + sh.Dy}
			b = union(b, sb)
		}
		if first {
			out, first = b, false
			continue
		}
		out = union(out, b)
	}
	return out
}

func union(a, b shapekit.Rect) shapekit.Rect {
	return shapekit.Rect{
		Left:   math.Min(a.Left, b.Left),
		Top:    math.Min(a.Top, b.Top),
		Right:  math.Max(a.Right, b.Right),
		Bottom: math.Max(a.Bottom, b.Bottom),
	}
}

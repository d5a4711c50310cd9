package bubble

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/shapekit"
)

func fixedConfig(dir Direction) Config {
	return Config{
		BoxWidth: 200, BoxHeight: 100,
		ArrowWidth: 20, ArrowHeight: 10,
		Direction:    dir,
		ArrowOffset:  Auto,
		CornerRadius: 8,
		Shadow:       Shadow{Radius: Auto},
	}
}

func points(p *shapekit.Path) []shapekit.Point {
	var pts []shapekit.Point
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case shapekit.MoveTo:
			pts = append(pts, e.Point)
		case shapekit.LineTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

func TestBuildOutlineStartSegments(t *testing.T) {
	tests := []struct {
		dir  Direction
		want []shapekit.Point // tip, first flank end, first corner start
	}{
		{Top, []shapekit.Point{{X: 100, Y: 0}, {X: 110, Y: 10}, {X: 192, Y: 10}}},
		{Bottom, []shapekit.Point{{X: 100, Y: 100}, {X: 90, Y: 90}, {X: 8, Y: 90}}},
		{Left, []shapekit.Point{{X: 0, Y: 50}, {X: 10, Y: 40}, {X: 10, Y: 8}}},
		{Right, []shapekit.Point{{X: 200, Y: 50}, {X: 190, Y: 60}, {X: 190, Y: 92}}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			pts := points(BuildOutline(Resolve(fixedConfig(tt.dir))))
			for i, want := range tt.want {
				if !pts[i].Near(want, 1e-9) {
					t.Errorf("point %d = %v, want %v", i, pts[i], want)
				}
			}
			// Closing flank returns to the tip.
			last := pts[len(pts)-1]
			if !last.Near(tt.want[0], 1e-9) {
				t.Errorf("last point = %v, want tip %v", last, tt.want[0])
			}
		})
	}
}

func TestBuildOutlineStructure(t *testing.T) {
	for _, dir := range []Direction{Top, Bottom, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			p := BuildOutline(Resolve(fixedConfig(dir)))
			var lines, arcs int
			for _, e := range p.Elements() {
				switch a := e.(type) {
				case shapekit.LineTo:
					lines++
				case shapekit.ArcTo:
					arcs++
					if a.Sweep != 90 || a.Radius != 8 {
						t.Errorf("arc sweep/radius = %v/%v, want 90/8", a.Sweep, a.Radius)
					}
				}
			}
			// 2 flanks + 4 edges + 1 closing edge.
			if lines != 7 || arcs != 4 {
				t.Errorf("lines=%d arcs=%d, want 7 and 4", lines, arcs)
			}
			if _, ok := p.Elements()[0].(shapekit.MoveTo); !ok {
				t.Error("outline must start with MoveTo at the tip")
			}
		})
	}
}

func TestBuildOutlineBoundsRoundTrip(t *testing.T) {
	for _, dir := range []Direction{Top, Bottom, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			c := NewConfig(180, 90)
			c.Direction = dir
			b := BuildOutline(Resolve(c)).Bounds()
			if math.Abs(b.Width()-180) > 1e-6 || math.Abs(b.Height()-90) > 1e-6 {
				t.Errorf("bounds %vx%v, want 180x90", b.Width(), b.Height())
			}
			if math.Abs(b.Left) > 1e-6 || math.Abs(b.Top) > 1e-6 {
				t.Errorf("bounds origin (%v,%v), want (0,0)", b.Left, b.Top)
			}
		})
	}
}

func TestBuildOutlineAreaClockwise(t *testing.T) {
	for _, dir := range []Direction{Top, Bottom, Left, Right} {
		t.Run(dir.String(), func(t *testing.T) {
			r := Resolve(fixedConfig(dir))
			length, depth := 200.0, 100.0-10
			if !dir.vertical() {
				length, depth = 100, 200-10
			}
			want := length*depth - (4-math.Pi)*64 + 20*10/2.0
			got := BuildOutline(r).Area()
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("Area() = %v, want %v", got, want)
			}
		})
	}
}

func TestBuildOutlineShadowInset(t *testing.T) {
	c := fixedConfig(Top)
	c.Shadow = Shadow{Enabled: true, Radius: 6}
	b := BuildOutline(Resolve(c)).Bounds()
	if math.Abs(b.Left-6) > 1e-9 || math.Abs(b.Top-6) > 1e-9 ||
		math.Abs(b.Right-194) > 1e-9 || math.Abs(b.Bottom-94) > 1e-9 {
		t.Errorf("Bounds() = %+v, want inset by 6", b)
	}
	tip := BuildOutline(Resolve(c)).Elements()[0].(shapekit.MoveTo).Point
	// Auto offset is half the width minus the shadow, measured from the inset edge.
	if !tip.Near(shapekit.Pt(6+100-6, 6), 1e-9) {
		t.Errorf("tip = %v", tip)
	}
}

func TestBuildOutlineWarnsOnOverlap(t *testing.T) {
	var buf bytes.Buffer
	shapekit.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { shapekit.SetLogger(nil) })

	c := fixedConfig(Top)
	c.CornerRadius = 80
	BuildOutline(Resolve(c))
	if !strings.Contains(buf.String(), "corner radius exceeds") {
		t.Errorf("expected overlap warning, got %q", buf.String())
	}
}

func TestBuildOutlineLargeBoxStructure(t *testing.T) {
	tests := []struct {
		w, h float64
		dir  Direction
	}{
		{1e7, 5e6, Right},
		{3e7, 1.5e7, Right},
		{3e7, 1.5e7, Bottom},
		{3e7, 1.5e7, Left},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			c := NewConfig(tt.w, tt.h)
			c.Direction = tt.dir
			var lines int
			for _, e := range BuildOutline(Resolve(c)).Elements() {
				if _, ok := e.(shapekit.LineTo); ok {
					lines++
				}
			}
			if lines != 7 {
				t.Errorf("%gx%g: %d LineTo, want 7", tt.w, tt.h, lines)
			}
		})
	}
}

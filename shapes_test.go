package shapekit

import (
	"math"
	"testing"
)

func TestTriangle(t *testing.T) {
	r := RectWH(10, 20, 40, 30)
	tests := []struct {
		dir  TriangleDirection
		apex Point
	}{
		{PointUp, Pt(30, 20)},
		{PointDown, Pt(30, 50)},
		{PointLeft, Pt(10, 35)},
		{PointRight, Pt(50, 35)},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			p := Triangle(r, tt.dir)
			start := p.Elements()[0].(MoveTo).Point
			if start != tt.apex {
				t.Errorf("apex = %v, want %v", start, tt.apex)
			}
			if got := p.Area(); math.Abs(got-600) > 1e-9 {
				t.Errorf("Area() = %v, want 600 (clockwise, half the rect)", got)
			}
			if p.Bounds() != r {
				t.Errorf("Bounds() = %+v, want %+v", p.Bounds(), r)
			}
		})
	}
}

func TestTriangleNegativeRect(t *testing.T) {
	p := Triangle(Rect{Left: 10, Top: 10, Right: 0, Bottom: 0}, PointUp)
	if p.Area() != 0 {
		t.Errorf("collapsed triangle area = %v, want 0", p.Area())
	}
}

package shapekit

import (
	"math"
	"testing"
)

func TestPathBuilderChain(t *testing.T) {
	p := BuildPath().
		MoveTo(0, 0).
		LineTo(10, 0).
		Corner(Pt(10, 10), 10, -90).
		LineToPt(Pt(0, 20)).
		Close().
		Build()

	elems := p.Elements()
	if len(elems) != 5 {
		t.Fatalf("got %d elements, want 5", len(elems))
	}
	arc, ok := elems[2].(ArcTo)
	if !ok {
		t.Fatalf("element 2 is %T, want ArcTo", elems[2])
	}
	if arc.Sweep != 90 || arc.Radius != 10 {
		t.Errorf("corner = %+v, want radius 10 sweep 90", arc)
	}
	if !arc.EndPoint().Near(Pt(20, 10), 1e-9) {
		t.Errorf("corner ends at %v, want (20,10)", arc.EndPoint())
	}
}

func TestPathBuilderShapes(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		area float64
	}{
		{"circle", BuildPath().Circle(5, 5, 4).Build(), math.Pi * 16},
		{"round rect", BuildPath().RoundRect(0, 0, 40, 20, 5).Build(), 800 - (4-math.Pi)*25},
		{"arc segment", BuildPath().MoveTo(0, 0).ArcTo(Pt(0, 0), 10, 0, 90).Close().Build(), math.Pi * 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Area(); math.Abs(got-tt.area) > 1e-9 {
				t.Errorf("Area() = %v, want %v", got, tt.area)
			}
		})
	}
}

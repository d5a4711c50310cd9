package divider

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/grid"
)

func testGrid() Grid {
	return Grid{
		Column:    &Spec{Color: color.Black, Thickness: 2, Left: 4, Right: 4},
		Row:       &Spec{Color: color.Black, Thickness: 2, Top: 3, Bottom: 5},
		SpanCount: 3,
	}
}

func lineEq(a, b shapekit.Line) bool {
	return a.P1.Near(b.P1, 1e-9) && a.P2.Near(b.P2, 1e-9)
}

func TestMeasureLastItemHasNoOffsets(t *testing.T) {
	g := testGrid()
	m := g.Measure(11, 12)
	want := grid.Cell{Row: 3, Col: 2, TotalRows: 4, TotalCols: 3}
	if m.Cell != want {
		t.Errorf("Cell = %+v, want %+v", m.Cell, want)
	}
	if m.Offsets != (shapekit.Insets{}) {
		t.Errorf("Offsets = %+v, want zero", m.Offsets)
	}
}

func TestOffsets(t *testing.T) {
	g := testGrid()
	tests := []struct {
		index int
		want  shapekit.Insets
	}{
		{0, shapekit.Insets{Right: 10, Bottom: 10}},
		{2, shapekit.Insets{Bottom: 10}},
		{9, shapekit.Insets{Right: 10}},
		{11, shapekit.Insets{}},
	}
	for _, tt := range tests {
		if got := g.Measure(tt.index, 12).Offsets; got != tt.want {
			t.Errorf("Offsets(%d) = %+v, want %+v", tt.index, got, tt.want)
		}
	}
}

func TestOffsetsNilSpec(t *testing.T) {
	g := testGrid()
	g.Row = nil
	if got := g.Measure(0, 12).Offsets; got != (shapekit.Insets{Right: 10}) {
		t.Errorf("Offsets = %+v, want only right", got)
	}
	g.Column = nil
	if got := g.Measure(0, 12).Offsets; got != (shapekit.Insets{}) {
		t.Errorf("Offsets = %+v, want zero", got)
	}
	if lines := g.Lines(g.Measure(0, 12), shapekit.RectWH(0, 0, 10, 10)); len(lines) != 0 {
		t.Errorf("Lines() with no specs = %v", lines)
	}
}

func TestColumnLineCollapsing(t *testing.T) {
	g := testGrid()
	p := g.Arrange(9, 100, 50)

	tests := []struct {
		name  string
		index int
		want  shapekit.Line
	}{
		// First row: only the bottom margin collapses, down to the row line.
		{"first row", 0, shapekit.Line{P1: shapekit.Pt(105, 0), P2: shapekit.Pt(105, 54)}},
		// Interior row: both ends reach the neighboring row lines.
		{"interior row", 4, shapekit.Line{P1: shapekit.Pt(215, 54), P2: shapekit.Pt(215, 114)}},
		// Last row: only the top margin collapses.
		{"last row", 6, shapekit.Line{P1: shapekit.Pt(105, 114), P2: shapekit.Pt(105, 170)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.ColumnLine(p[tt.index].Cell, p[tt.index].Bounds)
			if !ok {
				t.Fatal("ColumnLine() = false")
			}
			if !lineEq(got, tt.want) {
				t.Errorf("ColumnLine() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, ok := g.ColumnLine(p[2].Cell, p[2].Bounds); ok {
		t.Error("ColumnLine() for the last column = true")
	}
}

func TestRowLineCollapsing(t *testing.T) {
	g := testGrid()
	p := g.Arrange(9, 100, 50)

	tests := []struct {
		name  string
		index int
		want  shapekit.Line
	}{
		{"first column", 0, shapekit.Line{P1: shapekit.Pt(0, 54), P2: shapekit.Pt(105, 54)}},
		{"interior column", 4, shapekit.Line{P1: shapekit.Pt(105, 114), P2: shapekit.Pt(215, 114)}},
		{"last column", 5, shapekit.Line{P1: shapekit.Pt(215, 114), P2: shapekit.Pt(320, 114)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.RowLine(p[tt.index].Cell, p[tt.index].Bounds)
			if !ok {
				t.Fatal("RowLine() = false")
			}
			if !lineEq(got, tt.want) {
				t.Errorf("RowLine() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if _, ok := g.RowLine(p[7].Cell, p[7].Bounds); ok {
		t.Error("RowLine() for the last row = true")
	}
}

func TestCollapsingRespectsExplicitMargins(t *testing.T) {
	bounds := shapekit.RectWH(0, 0, 100, 50)

	g := testGrid()
	g.Column.Bottom = 2
	c := g.Measure(0, 9).Cell
	got, _ := g.ColumnLine(c, bounds)
	if want := shapekit.Pt(105, 48); !got.P2.Near(want, 1e-9) {
		t.Errorf("explicit margin: P2 = %v, want %v", got.P2, want)
	}

	g = testGrid()
	g.Column.Literal = true
	got, _ = g.ColumnLine(c, bounds)
	if want := shapekit.Pt(105, 50); !got.P2.Near(want, 1e-9) {
		t.Errorf("literal spec: P2 = %v, want %v", got.P2, want)
	}

	g = testGrid()
	g.Row = nil
	got, _ = g.ColumnLine(c, bounds)
	if want := shapekit.Pt(105, 50); !got.P2.Near(want, 1e-9) {
		t.Errorf("nil row spec: P2 = %v, want %v", got.P2, want)
	}
}

func TestSingleLineGridCollapsesAsFirst(t *testing.T) {
	bounds := shapekit.RectWH(0, 0, 100, 50)

	// One row of three: the only row is the first, so the bottom end reaches
	// the row divider's center even though no row line is drawn.
	g := testGrid()
	m := g.Measure(0, 3)
	got, ok := g.ColumnLine(m.Cell, bounds)
	if !ok {
		t.Fatal("ColumnLine() = false")
	}
	if want := (shapekit.Line{P1: shapekit.Pt(105, 0), P2: shapekit.Pt(105, 54)}); !lineEq(got, want) {
		t.Errorf("ColumnLine() = %+v, want %+v", got, want)
	}

	// One column of three: the row line's right end collapses the same way.
	g = testGrid()
	g.SpanCount = 1
	m = g.Measure(0, 3)
	got, ok = g.RowLine(m.Cell, bounds)
	if !ok {
		t.Fatal("RowLine() = false")
	}
	if want := (shapekit.Line{P1: shapekit.Pt(0, 54), P2: shapekit.Pt(105, 54)}); !lineEq(got, want) {
		t.Errorf("RowLine() = %+v, want %+v", got, want)
	}
}

func TestDrawStrokeCount(t *testing.T) {
	g := testGrid()
	strokes := g.Draw(g.Arrange(12, 40, 40))
	// 4 rows x 2 column gaps + 3 row gaps x 3 columns.
	if len(strokes) != 8+9 {
		t.Errorf("len(strokes) = %d, want 17", len(strokes))
	}
	for _, s := range strokes {
		if s.Thickness != 2 || s.Color != color.Black {
			t.Errorf("stroke style = %v/%v", s.Thickness, s.Color)
		}
	}
}

func TestGridValidate(t *testing.T) {
	g := testGrid()
	if err := g.Validate(12); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	g.SpanCount = 0
	if err := g.Validate(12); !errors.Is(err, grid.ErrSpanCount) {
		t.Errorf("Validate() = %v, want ErrSpanCount", err)
	}
	g = testGrid()
	g.Row.Thickness = -1
	if err := g.Validate(12); !errors.Is(err, ErrThickness) {
		t.Errorf("Validate() = %v, want ErrThickness", err)
	}
}

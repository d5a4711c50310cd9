package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/shapekit/render"
)

const fullScene = `
width: 400
height: 300
background: "#ffffff"
rings:
  - {x: 10, y: 10, size: 100, current: 40, color: "#3399ff"}
bubbles:
  - x: 150
    y: 10
    width: 180
    height: 90
    direction: left
    shadow: {dx: 1, dy: 2}
grids:
  - x: 10
    y: 130
    items: 4
    span: 2
    cell_width: 40
    cell_height: 30
    column: {thickness: 2, left: 4, right: 4}
    row: {thickness: 2, top: 3, bottom: 3}
lists:
  - {x: 150, y: 130, items: 3, item_width: 80, item_height: 20, divider: {thickness: 1}}
flows:
  - x: 250
    y: 130
    width: 140
    height: 100
    column_space: 4
    row_space: 4
    items:
      - {width: 60, height: 20}
      - {width: 60, height: 20}
      - {width: 60, height: 20}
triangles:
  - {x: 10, y: 250, width: 30, height: 20, direction: down}
cards:
  - {x: 60, y: 250, content_width: 40, content_height: 10, corner_radius: 6}
markers:
  - {x: 360, y: 0, width: 40, height: 40, corner: top-right, style: rounded, text: NEW}
`

func TestParseAndBuild(t *testing.T) {
	d, err := Parse([]byte(fullScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if s.Width() != 400 || s.Height() != 300 {
		t.Errorf("size = %dx%d, want 400x300", s.Width(), s.Height())
	}

	// ring 3, bubble 1, grid 4 cells + 4 lines, list 3 cells + 2 lines,
	// flow 3, triangle 1, card 2, marker 2
	if got, want := s.CommandCount(), 25; got != want {
		t.Errorf("CommandCount() = %d, want %d", got, want)
	}

	cmds := s.Commands()
	if cmds[0].Op != render.OpStroke || cmds[1].Op != render.OpStroke || cmds[2].Op != render.OpFill {
		t.Errorf("ring ops = %v %v %v, want stroke stroke fill", cmds[0].Op, cmds[1].Op, cmds[2].Op)
	}
	if cmds[3].Shadow == nil {
		t.Error("bubble command has no shadow")
	}
	b := cmds[3].Path.Bounds()
	if b.Left < 150 || b.Top < 10 || b.Right > 330 || b.Bottom > 100 {
		t.Errorf("bubble bounds %+v outside its box", b)
	}

	// The card is 40x10 of content plus the default 10px shadow inset on
	// each side, and draws its background inside that inset.
	bg, content := cmds[21], cmds[22]
	if bg.Shadow == nil || bg.Shadow.Radius != 10 {
		t.Errorf("card shadow = %+v, want radius 10", bg.Shadow)
	}
	if b := bg.Path.Bounds(); !near(b.Left, 70) || !near(b.Top, 260) || !near(b.Right, 110) || !near(b.Bottom, 270) {
		t.Errorf("card bounds = %+v, want (70,260)-(110,270)", b)
	}
	if b := content.Path.Bounds(); !near(b.Left, 70) || !near(b.Top, 260) {
		t.Errorf("card content at (%v,%v), want (70,260)", b.Left, b.Top)
	}

	tri, label := cmds[23].Path.Bounds(), cmds[24].Path.Bounds()
	if tri.Left < 360 || tri.Top < 0 || tri.Right > 400 || tri.Bottom > 40 {
		t.Errorf("marker bounds %+v outside its box", tri)
	}
	if label.Width() == 0 || label.Left < 360 || label.Bottom > 40 {
		t.Errorf("marker label bounds %+v", label)
	}
}

func near(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func TestBuildMarkerWithoutText(t *testing.T) {
	d, err := Parse([]byte("width: 50\nheight: 50\nmarkers:\n  - {width: 50, height: 50, style: cut}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := s.CommandCount(); got != 1 {
		t.Errorf("CommandCount() = %d, want 1 (outline only)", got)
	}
}

func TestBuildFlatCard(t *testing.T) {
	d, err := Parse([]byte("width: 50\nheight: 50\ncards:\n  - {content_width: 20, content_height: 20, padding: 5, flat: true}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cmds := s.Commands()
	if len(cmds) != 2 || cmds[0].Shadow != nil {
		t.Fatalf("commands = %+v, want an unshadowed background and the content", cmds)
	}
	if b := cmds[0].Path.Bounds(); !near(b.Right, 30) || !near(b.Bottom, 30) {
		t.Errorf("flat card bounds = %+v, want 30x30", b)
	}
}

func TestBuildEmptyRingSkipsProgress(t *testing.T) {
	d, err := Parse([]byte("width: 50\nheight: 50\nrings:\n  - {size: 50}\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s, err := d.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := s.CommandCount(); got != 2 {
		t.Errorf("CommandCount() = %d, want 2 (track and label)", got)
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse([]byte("width: 10\nheight: 10\nbogus: 1\n"))
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero canvas", "width: 0\nheight: 10\n"},
		{"bad background", "width: 10\nheight: 10\nbackground: '#12'\n"},
		{"ring size", "width: 10\nheight: 10\nrings: [{size: 0}]\n"},
		{"ring direction", "width: 10\nheight: 10\nrings: [{size: 5, direction: up}]\n"},
		{"ring language", "width: 10\nheight: 10\nrings: [{size: 5, language: '!!'}]\n"},
		{"bubble direction", "width: 10\nheight: 10\nbubbles: [{width: 5, height: 5, direction: north}]\n"},
		{"grid orientation", "width: 10\nheight: 10\ngrids: [{items: 1, span: 1, orientation: diagonal}]\n"},
		{"flow gravity", "width: 10\nheight: 10\nflows: [{gravity: middle}]\n"},
		{"triangle color", "width: 10\nheight: 10\ntriangles: [{direction: up, color: '#xyz'}]\n"},
		{"card content size", "width: 10\nheight: 10\ncards: [{content_width: -1}]\n"},
		{"card shadow color", "width: 10\nheight: 10\ncards: [{shadow: {color: red}}]\n"},
		{"marker size", "width: 10\nheight: 10\nmarkers: [{width: 0, height: 5}]\n"},
		{"marker corner", "width: 10\nheight: 10\nmarkers: [{width: 5, height: 5, corner: middle}]\n"},
		{"marker style", "width: 10\nheight: 10\nmarkers: [{width: 5, height: 5, style: wavy}]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidateCollectsAll(t *testing.T) {
	d := &Document{
		Width:     10,
		Height:    10,
		Rings:     []Ring{{Size: 0}},
		Triangles: []Triangle{{Direction: "sideways"}},
	}
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"rings[0]", "triangles[0]"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestBuildRejectsBadGrid(t *testing.T) {
	d, err := Parse([]byte("width: 10\nheight: 10\ngrids: [{items: 3, span: 0}]\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := d.Build(); err == nil || !strings.Contains(err.Error(), "grids[0]") {
		t.Errorf("Build() error = %v, want grids[0] error", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(fullScene), 0o600); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d.Rings) != 1 || d.Rings[0].X != 10 {
		t.Errorf("rings = %+v", d.Rings)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

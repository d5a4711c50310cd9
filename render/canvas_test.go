package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func TestCanvasRendererFill(t *testing.T) {
	dc := gg.NewContext(40, 40)
	defer dc.Close()

	s := NewScene(40, 40)
	s.SetBackground(color.White)
	s.Fill(rectPath(0, 0, 20, 40), color.RGBA{R: 0xff, A: 0xff})
	if err := NewCanvasRenderer(dc).Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := dc.Image()
	r, g, b, _ := img.At(10, 20).RGBA()
	if r>>8 < 0xf0 || g>>8 > 0x10 || b>>8 > 0x10 {
		t.Errorf("filled pixel = %v, want red", img.At(10, 20))
	}
	r, g, b, _ = img.At(30, 20).RGBA()
	if r>>8 < 0xf0 || g>>8 < 0xf0 || b>>8 < 0xf0 {
		t.Errorf("background pixel = %v, want white", img.At(30, 20))
	}
}

func TestCanvasRendererNilContext(t *testing.T) {
	if err := NewCanvasRenderer(nil).Render(NewScene(1, 1)); err == nil {
		t.Error("Render() with nil context succeeded")
	}
}

func TestEncodePNG(t *testing.T) {
	s := NewScene(32, 16)
	s.SetBackground(color.White)
	s.FillShadow(rectPath(4, 4, 8, 8), color.Black, Shadow{Radius: 2, Dx: 1, Dy: 1, Color: color.Gray{Y: 0x80}})

	var buf bytes.Buffer
	if err := EncodePNG(&buf, s, WithShadowSteps(2)); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("decoded size = %v, want 32x16", b)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	s := NewScene(8, 8)
	s.Stroke(rectPath(1, 1, 6, 6), color.Black, 1)
	if err := SavePNG(path, s); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}

func TestFade(t *testing.T) {
	got := fade(color.NRGBA{R: 10, A: 200}, 4).(color.NRGBA)
	if got.A != 50 || got.R != 10 {
		t.Errorf("fade() = %v", got)
	}
}

package filter

import (
	"image"
	"testing"
)

func square(size, lo, hi int) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			img.Pix[y*img.Stride+x] = 0xff
		}
	}
	return img
}

func total(img *image.Alpha) int {
	var sum int
	for _, v := range img.Pix {
		sum += int(v)
	}
	return sum
}

func TestBlurAlphaSpreads(t *testing.T) {
	img := square(41, 15, 26)
	before := total(img)

	BlurAlpha(img, 2)

	if got := img.AlphaAt(20, 20).A; got != 0xff && got < 0xf0 {
		t.Errorf("center alpha = %d, want near opaque", got)
	}
	if img.AlphaAt(13, 20).A == 0 {
		t.Error("blur did not reach two pixels outside the edge")
	}
	if img.AlphaAt(15, 20).A >= 0xff {
		t.Error("edge pixel still opaque")
	}
	if img.AlphaAt(0, 0).A != 0 {
		t.Error("blur reached the far corner")
	}

	// the kernel is normalized and the square is far from the border
	after := total(img)
	if d := after - before; d > before/50 || d < -before/50 {
		t.Errorf("coverage changed from %d to %d", before, after)
	}
}

func TestBlurAlphaNoop(t *testing.T) {
	img := square(8, 2, 6)
	want := append([]uint8(nil), img.Pix...)

	BlurAlpha(img, 0)
	BlurAlpha(nil, 3)
	BlurAlpha(image.NewAlpha(image.Rectangle{}), 3)

	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("pixel %d changed with zero sigma", i)
		}
	}
}

func TestBlurAlphaBorderFadesOut(t *testing.T) {
	img := square(10, 0, 10)
	BlurAlpha(img, 2)
	if a := img.AlphaAt(0, 0).A; a >= 0xff {
		t.Errorf("corner alpha = %d, want below opaque", a)
	}
	if img.AlphaAt(0, 0).A >= img.AlphaAt(5, 5).A {
		t.Error("corner is not lighter than the center")
	}
}

package filter

import (
	"image"
	"sync"
)

var rowPool = sync.Pool{
	New: func() any { return new([]float32) },
}

// BlurAlpha blurs img in place with a Gaussian of standard deviation sigma.
// It is a no-op for sigma <= 0.
func BlurAlpha(img *image.Alpha, sigma float64) {
	if img == nil || sigma <= 0 {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return
	}
	kernel := CachedGaussianKernel(sigma)

	bufp := rowPool.Get().(*[]float32)
	defer rowPool.Put(bufp)
	n := max(w, h)
	if cap(*bufp) < 2*n {
		*bufp = make([]float32, 2*n)
	}
	buf := (*bufp)[:2*n]
	src, dst := buf[:n], buf[n:]

	for y := 0; y < h; y++ {
		convolve(img.Pix[y*img.Stride:], 1, w, kernel, src, dst)
	}
	for x := 0; x < w; x++ {
		convolve(img.Pix[x:], img.Stride, h, kernel, src, dst)
	}
}

// convolve filters n samples spaced step apart. src and dst are scratch
// rows of at least n elements.
func convolve(pix []uint8, step, n int, kernel, src, dst []float32) {
	for i := 0; i < n; i++ {
		src[i] = float32(pix[i*step])
	}
	half := len(kernel) / 2
	for i := 0; i < n; i++ {
		var acc float32
		lo := max(0, i-half)
		hi := min(n-1, i+half)
		for j := lo; j <= hi; j++ {
			acc += src[j] * kernel[j-i+half]
		}
		dst[i] = acc
	}
	for i := 0; i < n; i++ {
		pix[i*step] = clampUint8(dst[i])
	}
}

func clampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

package filter

import (
	"math"
	"sync"
)

// GaussianKernel returns a normalized 1D Gaussian kernel with standard
// deviation sigma. It has 2*ceil(3*sigma)+1 taps, covering three standard
// deviations on each side. For sigma <= 0 it returns the identity [1].
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1}
	}

	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, 2*half+1)

	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache keeps kernels by sigma quantized to 0.01.
type kernelCache struct {
	mu     sync.RWMutex
	byKey  map[int][]float32
	maxLen int
}

var kernels = &kernelCache{byKey: make(map[int][]float32), maxLen: 32}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(math.Round(sigma * 100))

	c.mu.RLock()
	k, ok := c.byKey[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.byKey) >= c.maxLen {
		clear(c.byKey)
	}
	c.byKey[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel is GaussianKernel with results shared between
// calls. Shadows in one scene usually repeat a handful of radii.
func CachedGaussianKernel(sigma float64) []float32 {
	return kernels.get(sigma)
}

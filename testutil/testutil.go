package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pixclust/core"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// NoiseImage fills a w*h image with uniformly random colors.
func (r *RNG) NoiseImage(w, h int) *core.Buffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := core.NewBuffer(w, h)
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, core.RGB8{uint8(r.rand.Intn(256)), uint8(r.rand.Intn(256)), uint8(r.rand.Intn(256))}, 255)
	}
	return buf
}

// ClusteredImage paints len(colors) horizontal bands, each pixel drawn from
// its band color plus Gaussian noise with the given spread per channel.
// Useful for testing on images with a known number of color groups.
func (r *RNG) ClusteredImage(w, h int, colors []core.RGB8, spread float64) *core.Buffer {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := core.NewBuffer(w, h)
	if len(colors) == 0 {
		return buf
	}
	for y := 0; y < h; y++ {
		base := colors[y*len(colors)/h]
		for x := 0; x < w; x++ {
			var c core.RGB8
			for ch := range c {
				c[ch] = clamp8(float64(base[ch]) + r.rand.NormFloat64()*spread)
			}
			buf.Set(y*w+x, c, 255)
		}
	}
	return buf
}

func clamp8(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// Uniform returns a w*h image of a single color.
func Uniform(w, h int, c core.RGB8) *core.Buffer {
	buf := core.NewBuffer(w, h)
	buf.Fill(c)
	return buf
}

// Halves paints the left half of a w*h image a and the right half b.
func Halves(w, h int, a, b core.RGB8) *core.Buffer {
	buf := core.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := a
			if x >= w/2 {
				c = b
			}
			buf.Set(y*w+x, c, 255)
		}
	}
	return buf
}

// Gradient returns a deterministic image with many distinct colors.
func Gradient(w, h int) *core.Buffer {
	buf := core.NewBuffer(w, h)
	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, core.RGB8{uint8(i * 7 % 256), uint8(i * 13 % 256), uint8(i * 31 % 256)}, 255)
	}
	return buf
}

// RequireValidResult checks the label invariants of a full-image result:
// one label per pixel, each indexing res.Centroids. With allowNoise,
// core.Noise is accepted as well.
func RequireValidResult(t require.TestingT, buf *core.Buffer, res *core.Result, allowNoise bool) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	require.NotNil(t, res)
	require.Len(t, res.Labels, buf.Len())
	for i, l := range res.Labels {
		if allowNoise && l == core.Noise {
			continue
		}
		require.GreaterOrEqual(t, l, 0, "pixel %d", i)
		require.Less(t, l, len(res.Centroids), "pixel %d", i)
	}
}

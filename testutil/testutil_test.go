package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/pixclust/core"
)

func TestClusteredImage(t *testing.T) {
	rng := NewRNG(4711)
	colors := []core.RGB8{{0, 0, 0}, {255, 255, 255}}

	buf := rng.ClusteredImage(10, 4, colors, 2)

	assert.NoError(t, buf.Validate())
	assert.Less(t, buf.Pix[0], uint8(20))
	assert.Greater(t, buf.Pix[(3*10)*core.Channels], uint8(235))
	assert.Equal(t, uint8(255), buf.Pix[3])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.NoiseImage(4, 4)

	rng.Reset()
	b := rng.NoiseImage(4, 4)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestShapes(t *testing.T) {
	u := Uniform(2, 2, core.RGB8{1, 2, 3})
	assert.Equal(t, []uint8{1, 2, 3, 255, 1, 2, 3, 255, 1, 2, 3, 255, 1, 2, 3, 255}, u.Pix)

	h := Halves(2, 1, core.RGB8{1, 1, 1}, core.RGB8{9, 9, 9})
	assert.Equal(t, []uint8{1, 1, 1, 255, 9, 9, 9, 255}, h.Pix)

	g := Gradient(3, 1)
	assert.Equal(t, []uint8{0, 0, 0, 255, 7, 13, 31, 255, 14, 26, 62, 255}, g.Pix)
}

func TestRequireValidResult(t *testing.T) {
	buf := Uniform(2, 1, core.RGB8{})
	RequireValidResult(t, buf, &core.Result{Labels: []int{0, core.Noise}, Centroids: []core.Color{{}}}, true)
}

package assign

import (
	"context"
	"testing"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripes(width, height int) *core.Buffer {
	buf := core.NewBuffer(width, height)
	for i := 0; i < buf.Len(); i++ {
		if i%2 == 0 {
			buf.Set(i, core.RGB8{10, 10, 10}, 255)
		} else {
			buf.Set(i, core.RGB8{240, 240, 240}, 255)
		}
	}
	return buf
}

func TestNearest(t *testing.T) {
	ctx := context.Background()
	buf := stripes(7, 5)
	centroids := []core.Color{{0, 0, 0}, {255, 255, 255}}

	labels, err := Nearest(ctx, buf, centroids, Config{})
	require.NoError(t, err)
	require.Len(t, labels, 35)
	for i, l := range labels {
		assert.Equal(t, i%2, l)
	}
}

func TestNearest_ChunkingDoesNotChangeResult(t *testing.T) {
	ctx := context.Background()
	buf := core.NewBuffer(33, 17)
	for i := 0; i < buf.Len(); i++ {
		v := uint8(i * 7 % 256)
		buf.Set(i, core.RGB8{v, 255 - v, v / 2}, 255)
	}
	centroids := []core.Color{{0, 255, 0}, {128, 128, 64}, {255, 0, 128}}

	sequential, err := Nearest(ctx, buf, centroids, Config{Workers: 1, ChunkSize: buf.Len()})
	require.NoError(t, err)

	parallel, err := Nearest(ctx, buf, centroids, Config{Workers: 8, ChunkSize: 10})
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestNearest_Gate(t *testing.T) {
	ctx := context.Background()
	buf := stripes(4, 1)

	labels, err := Nearest(ctx, buf, []core.Color{{10, 10, 10}}, Config{Gate: 50})
	require.NoError(t, err)
	assert.Equal(t, []int{0, core.Noise, 0, core.Noise}, labels)
}

func TestNearest_SquaredGate(t *testing.T) {
	ctx := context.Background()
	buf := stripes(2, 1)

	// 230^2*3 exceeds the gate, 0 does not.
	labels, err := Nearest(ctx, buf, []core.Color{{10, 10, 10}}, Config{Gate: 2500, Metric: distance.MetricSquaredL2})
	require.NoError(t, err)
	assert.Equal(t, []int{0, core.Noise}, labels)

	_, err = Nearest(ctx, buf, []core.Color{{10, 10, 10}}, Config{Metric: distance.Metric(9)})
	assert.Error(t, err)
}

func TestNearest_NoCentroids(t *testing.T) {
	labels, err := Nearest(context.Background(), stripes(3, 1), nil, Config{})
	require.NoError(t, err)
	assert.Equal(t, []int{core.Noise, core.Noise, core.Noise}, labels)
}

func TestNearest_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Nearest(ctx, stripes(8, 8), []core.Color{{0, 0, 0}}, Config{ChunkSize: 4})
	assert.ErrorIs(t, err, context.Canceled)
}

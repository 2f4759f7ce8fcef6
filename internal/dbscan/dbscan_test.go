package dbscan

import (
	"context"
	"testing"

	"github.com/hupe1980/pixclust/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster(t *testing.T) {
	ctx := context.Background()

	t.Run("TwoGroupsAndNoise", func(t *testing.T) {
		points := []core.Color{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
			{200, 200, 200}, {201, 200, 200}, {200, 201, 200},
			{100, 0, 255},
		}

		labels, n, err := Cluster(ctx, points, 5, 2)
		require.NoError(t, err)
		require.Equal(t, 2, n)

		assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, core.Noise}, labels)
	})

	t.Run("UniformIsOneCluster", func(t *testing.T) {
		points := make([]core.Color, 100)
		for i := range points {
			points[i] = core.Color{128, 128, 128}
		}

		labels, n, err := Cluster(ctx, points, 150, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		for _, l := range labels {
			assert.Equal(t, 0, l)
		}
	})

	t.Run("NoiseReclaimedAsBorder", func(t *testing.T) {
		// Point 0 is visited first with a single neighbor and becomes noise.
		// Point 2 is core and reaches it later.
		points := []core.Color{
			{0, 0, 0},
			{20, 0, 0},
			{10, 0, 0},
			{12, 0, 0},
		}

		labels, n, err := Cluster(ctx, points, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, []int{0, 0, 0, 0}, labels)
	})

	t.Run("AllNoise", func(t *testing.T) {
		points := []core.Color{{0, 0, 0}, {100, 100, 100}, {255, 255, 255}}

		labels, n, err := Cluster(ctx, points, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		for _, l := range labels {
			assert.Equal(t, core.Noise, l)
		}
	})

	t.Run("InvalidParameters", func(t *testing.T) {
		_, _, err := Cluster(ctx, nil, 0, 1)
		assert.ErrorIs(t, err, core.ErrInvalidParameter)

		_, _, err = Cluster(ctx, nil, 1, 0)
		assert.ErrorIs(t, err, core.ErrInvalidParameter)
	})

	t.Run("Cancellation", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, _, err := Cluster(cctx, []core.Color{{1, 1, 1}}, 1, 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRangeQuery(t *testing.T) {
	points := []core.Color{{0, 0, 0}, {3, 4, 0}, {6, 8, 0}}

	assert.Equal(t, []int{1}, RangeQuery(points, 0, 5))
	assert.Equal(t, []int{0, 2}, RangeQuery(points, 1, 5))
	assert.Empty(t, RangeQuery(points, 0, 4.9))
}

func TestCentroids(t *testing.T) {
	points := []core.Color{{0, 0, 0}, {10, 20, 30}, {99, 99, 99}}
	labels := []int{0, 0, core.Noise}

	got := Centroids(points, labels, 2)
	require.Len(t, got, 2)
	assert.Equal(t, core.Color{5, 10, 15}, got[0])
	assert.Equal(t, core.MidGray, got[1])
}

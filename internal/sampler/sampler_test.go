package sampler

import (
	"testing"

	"github.com/hupe1980/pixclust/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStride(t *testing.T) {
	assert.Equal(t, 4, Stride(4))
	assert.Equal(t, 4, Stride(10000))
	assert.Equal(t, 8, Stride(10001))
}

func TestStrided(t *testing.T) {
	assert.Equal(t, []int{0, 4, 8}, Strided(10, 4))
	assert.Equal(t, []int{0}, Strided(4, 4))
	assert.Equal(t, []int{0, 1, 2}, Strided(3, 0))
	assert.Nil(t, Strided(0, 4))
}

func TestRandom(t *testing.T) {
	t.Run("DistinctAndInRange", func(t *testing.T) {
		got := Random(util.NewRNG(1), 500, 100)
		require.Len(t, got, 100)

		seen := make(map[int]struct{}, len(got))
		for _, v := range got {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 500)
			_, dup := seen[v]
			assert.False(t, dup, "duplicate index %d", v)
			seen[v] = struct{}{}
		}
	})

	t.Run("CappedAtN", func(t *testing.T) {
		got := Random(util.NewRNG(1), 10, 2000)
		assert.Len(t, got, 10)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	})

	t.Run("Reproducible", func(t *testing.T) {
		a := Random(util.NewRNG(99), 1000, 50)
		b := Random(util.NewRNG(99), 1000, 50)
		assert.Equal(t, a, b)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Nil(t, Random(util.NewRNG(1), 0, 10))
		assert.Nil(t, Random(util.NewRNG(1), 10, 0))
	})
}

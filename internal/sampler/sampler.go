// Package sampler draws pixel subsets for algorithms too expensive to run on
// every pixel.
package sampler

import "github.com/hupe1980/pixclust/util"

const (
	// StrideThreshold is the pixel count above which the coarse stride is used.
	StrideThreshold = 10000

	fineStride   = 4
	coarseStride = 8
)

// Stride returns the k-means training stride for an image of total pixels.
func Stride(total int) int {
	if total > StrideThreshold {
		return coarseStride
	}
	return fineStride
}

// Strided returns the indices 0, stride, 2*stride, ... below total.
func Strided(total, stride int) []int {
	if total <= 0 {
		return nil
	}
	if stride < 1 {
		stride = 1
	}
	out := make([]int, 0, (total+stride-1)/stride)
	for i := 0; i < total; i += stride {
		out = append(out, i)
	}
	return out
}

// Random returns min(size, n) distinct indices from [0,n) drawn without
// replacement. The draw is a partial Fisher-Yates shuffle, so the result is
// fully determined by the state of rng.
func Random(rng *util.RNG, n, size int) []int {
	if n <= 0 || size <= 0 {
		return nil
	}
	if size > n {
		size = n
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < size; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:size:size]
}

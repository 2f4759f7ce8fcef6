package metric

import (
	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
)

// CalinskiHarabasz returns (betweenSS/(k-1)) / (withinSS/(n-k)) over a
// strided sample (see MaxSamples), where k is the number of centroids and n
// the sample size.
//
// betweenSS sums size*dist(centroid, grandMean)^2 over clusters with at least
// one sampled member; withinSS sums dist(pixel, centroid)^2 over sampled
// pixels whose label indexes a centroid. Fewer than two centroids, zero
// withinSS or a non-finite result yields FallbackCalinskiHarabasz. The value
// may be negative when n < k; Evaluate clamps it.
func CalinskiHarabasz(buf *core.Buffer, centroids []core.Color, labels []int) float64 {
	k := len(centroids)
	if k < 2 {
		return FallbackCalinskiHarabasz
	}

	s := strided(buf, labels)
	grand, ok := core.Mean(s.colors)
	if !ok {
		return FallbackCalinskiHarabasz
	}
	n := len(s.colors)

	sizes := make([]int, k)
	for _, l := range s.labels {
		if l >= 0 && l < k {
			sizes[l]++
		}
	}

	var betweenSS float64
	for i, c := range centroids {
		if sizes[i] == 0 {
			continue
		}
		betweenSS += float64(sizes[i]) * distance.SquaredEuclidean(c, grand)
	}

	var withinSS float64
	for i, l := range s.labels {
		if l >= 0 && l < k {
			withinSS += distance.SquaredEuclidean(s.colors[i], centroids[l])
		}
	}

	if withinSS == 0 {
		return FallbackCalinskiHarabasz
	}

	ch := (betweenSS / float64(k-1)) / (withinSS / float64(n-k))
	return finiteOr(ch, FallbackCalinskiHarabasz)
}

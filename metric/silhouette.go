package metric

import (
	"math"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
)

// Silhouette returns the mean silhouette coefficient over a strided sample
// (see MaxSamples).
//
// For a sampled pixel, a is its mean distance to the other members of its
// label and b the smallest mean distance to the members of any other label;
// its score is (b-a)/max(a,b), or 0 when a is 0. Pixels alone in their label
// are skipped. Every distinct label value, noise included, counts as a group.
// Fewer than two labels in the sample, or no scored pixel, yields
// FallbackSilhouette.
func Silhouette(buf *core.Buffer, labels []int) float64 {
	s := strided(buf, labels)
	order, members := s.groups()
	if len(order) < 2 {
		return FallbackSilhouette
	}

	sumDist := func(p core.Color, idx []int) float64 {
		var sum float64
		for _, j := range idx {
			sum += distance.Euclidean(p, s.colors[j])
		}
		return sum
	}

	var total float64
	valid := 0
	for i, p := range s.colors {
		own := members[s.labels[i]]
		if len(own) <= 1 {
			continue
		}
		a := sumDist(p, own) / float64(len(own)-1)

		b := math.Inf(1)
		for _, l := range order {
			if l == s.labels[i] {
				continue
			}
			other := members[l]
			b = math.Min(b, sumDist(p, other)/float64(len(other)))
		}
		if math.IsInf(b, 1) {
			continue
		}

		score := 0.0
		if a != 0 {
			score = (b - a) / math.Max(a, b)
		}
		total += score
		valid++
	}

	if valid == 0 {
		return FallbackSilhouette
	}
	return finiteOr(total/float64(valid), FallbackSilhouette)
}

package metric

import (
	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
)

// PlaceholderScatter is the constant intra-cluster scatter assumed by
// SimplifiedDaviesBouldin.
const PlaceholderScatter = 10.0

// SimplifiedDaviesBouldin returns the Davies-Bouldin index computed with a
// fixed scatter of PlaceholderScatter for every cluster, so only centroid
// separation influences it. Pairs of coincident centroids are skipped.
// Fewer than two centroids yields FallbackDaviesBouldin.
func SimplifiedDaviesBouldin(centroids []core.Color) float64 {
	scatter := make([]float64, len(centroids))
	for i := range scatter {
		scatter[i] = PlaceholderScatter
	}
	return daviesBouldin(centroids, scatter)
}

// DaviesBouldin is the variant reported by Evaluate.
func DaviesBouldin(centroids []core.Color) float64 {
	return SimplifiedDaviesBouldin(centroids)
}

// TextbookDaviesBouldin returns the Davies-Bouldin index using the mean
// distance of each cluster's sampled members to its centroid as scatter.
// A cluster without sampled members has zero scatter.
func TextbookDaviesBouldin(buf *core.Buffer, centroids []core.Color, labels []int) float64 {
	if len(centroids) < 2 {
		return FallbackDaviesBouldin
	}

	s := strided(buf, labels)
	sums := make([]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i, l := range s.labels {
		if l < 0 || l >= len(centroids) {
			continue
		}
		sums[l] += distance.Euclidean(s.colors[i], centroids[l])
		counts[l]++
	}

	scatter := make([]float64, len(centroids))
	for i := range scatter {
		if counts[i] > 0 {
			scatter[i] = sums[i] / float64(counts[i])
		}
	}
	return daviesBouldin(centroids, scatter)
}

func daviesBouldin(centroids []core.Color, scatter []float64) float64 {
	k := len(centroids)
	if k < 2 {
		return FallbackDaviesBouldin
	}

	var index float64
	for i := 0; i < k; i++ {
		maxRatio := 0.0
		for j := 0; j < k; j++ {
			if i == j {
				continue
			}
			d := distance.Euclidean(centroids[i], centroids[j])
			if d == 0 {
				continue
			}
			maxRatio = max(maxRatio, (scatter[i]+scatter[j])/d)
		}
		index += maxRatio
	}

	return finiteOr(index/float64(k), FallbackDaviesBouldin)
}

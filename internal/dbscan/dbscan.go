// Package dbscan implements density-based clustering over a color sample.
package dbscan

import (
	"context"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
	"github.com/hupe1980/pixclust/internal/visited"
)

// Cluster runs DBSCAN over points using Euclidean distance and brute-force
// neighbor queries.
//
// A point with fewer than minSamples neighbors within eps (itself excluded)
// is provisionally noise. Noise reached from a core point is reclaimed as a
// border point of that cluster. The returned labels hold cluster ids
// 0..clusters-1 or core.Noise; core.Unvisited never escapes.
func Cluster(ctx context.Context, points []core.Color, eps float64, minSamples int) ([]int, int, error) {
	if eps <= 0 {
		return nil, 0, core.NewParameterError("epsilon", eps)
	}
	if minSamples <= 0 {
		return nil, 0, core.NewParameterError("minSamples", minSamples)
	}

	labels := make([]int, len(points))
	for i := range labels {
		labels[i] = core.Unvisited
	}
	queued := visited.New(len(points))

	clusterID := 0
	for i := range points {
		if labels[i] != core.Unvisited {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		neighbors := RangeQuery(points, i, eps)
		if len(neighbors) < minSamples {
			labels[i] = core.Noise
			continue
		}

		labels[i] = clusterID
		queue := make([]int, 0, len(neighbors))
		for _, n := range neighbors {
			if queued.Mark(n) {
				queue = append(queue, n)
			}
		}

		for len(queue) > 0 {
			q := queue[0]
			queue = queue[1:]

			if labels[q] == core.Noise {
				labels[q] = clusterID
			}
			if labels[q] != core.Unvisited {
				continue
			}
			labels[q] = clusterID

			qNeighbors := RangeQuery(points, q, eps)
			if len(qNeighbors) >= minSamples {
				for _, n := range qNeighbors {
					if queued.Mark(n) {
						queue = append(queue, n)
					}
				}
			}
		}

		clusterID++
	}

	return labels, clusterID, nil
}

// RangeQuery returns the indices of all points within eps of points[idx],
// excluding idx itself.
func RangeQuery(points []core.Color, idx int, eps float64) []int {
	var result []int
	p := points[idx]
	for i, q := range points {
		if i == idx {
			continue
		}
		if distance.Euclidean(p, q) <= eps {
			result = append(result, i)
		}
	}
	return result
}

// Centroids returns the mean color of each cluster's members.
// A cluster without members gets core.MidGray.
func Centroids(points []core.Color, labels []int, clusters int) []core.Color {
	sums := make([]core.Color, clusters)
	counts := make([]int, clusters)
	for i, l := range labels {
		if l < 0 || l >= clusters {
			continue
		}
		sums[l][0] += points[i][0]
		sums[l][1] += points[i][1]
		sums[l][2] += points[i][2]
		counts[l]++
	}

	out := make([]core.Color, clusters)
	for c := range out {
		if counts[c] == 0 {
			out[c] = core.MidGray
			continue
		}
		n := float64(counts[c])
		out[c] = core.Color{sums[c][0] / n, sums[c][1] / n, sums[c][2] / n}
	}
	return out
}

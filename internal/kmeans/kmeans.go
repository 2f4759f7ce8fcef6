package kmeans

import (
	"context"
	"math"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
	"github.com/hupe1980/pixclust/internal/arena"
	"github.com/hupe1980/pixclust/util"
)

// Config bounds the amount of work done by TrainKMeans.
type Config struct {
	// Restarts is the number of independent k-means++ runs.
	Restarts int
	// MaxIter is the maximum number of Lloyd iterations per run.
	MaxIter int
}

// DefaultConfig returns 10 restarts of at most 5 iterations.
func DefaultConfig() Config {
	return Config{Restarts: 10, MaxIter: 5}
}

// Model is the outcome of the best run.
type Model struct {
	Centroids *arena.Flat
	Inertia   float64
}

// TrainKMeans trains k centroids from the given points using k-means++
// seeding and Lloyd's algorithm, keeping the run with the lowest inertia.
//
// Points must be non-empty and k positive; k may exceed len(points), in which
// case seeding repeats points.
func TrainKMeans(ctx context.Context, points []core.Color, k int, rng *util.RNG, cfg Config) (*Model, error) {
	if k < 1 {
		return nil, core.NewParameterError("k", k)
	}
	if len(points) == 0 {
		return nil, core.NewParameterError("points", 0)
	}
	if cfg.Restarts < 1 {
		cfg.Restarts = 1
	}
	if cfg.MaxIter < 1 {
		cfg.MaxIter = 1
	}

	var best *Model
	bestInertia := math.Inf(1)

	for run := 0; run < cfg.Restarts; run++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		centroids := InitPlusPlus(points, k, rng)
		centroids, inertia, err := lloyd(ctx, points, centroids, cfg.MaxIter)
		if err != nil {
			return nil, err
		}

		if inertia < bestInertia {
			bestInertia = inertia
			best = &Model{Centroids: centroids, Inertia: inertia}
		}
	}

	return best, nil
}

// InitPlusPlus picks k initial centroids: the first uniformly, each further
// one with probability proportional to its squared distance to the nearest
// centroid already chosen.
func InitPlusPlus(points []core.Color, k int, rng *util.RNG) *arena.Flat {
	n := len(points)
	centroids := arena.NewFlat(k)
	centroids.Set(0, points[rng.Intn(n)])

	minDist := make([]float64, n)
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}

	for c := 1; c < k; c++ {
		latest := centroids.Row(c - 1)
		var sum float64
		for i, p := range points {
			if d := distance.SquaredEuclidean(p, latest); d < minDist[i] {
				minDist[i] = d
			}
			sum += minDist[i]
		}

		// Weighted cumulative-sum selection.
		r := rng.Float64() * sum
		idx := 0
		for r > 0 && idx < n {
			r -= minDist[idx]
			idx++
		}
		if idx > 0 {
			idx--
		}
		centroids.Set(c, points[idx])
	}

	return centroids
}

// lloyd runs bounded Lloyd iterations from the given seeds.
// It returns the final centroids and the inertia of the last assignment pass.
func lloyd(ctx context.Context, points []core.Color, centroids *arena.Flat, maxIter int) (*arena.Flat, float64, error) {
	assignments := make([]int, len(points))
	var inertia float64

	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		changed := false
		inertia = 0

		// Assignment step
		for i, p := range points {
			cluster, d := AssignPartition(p, centroids)
			inertia += d
			if assignments[i] != cluster {
				assignments[i] = cluster
				changed = true
			}
		}

		if !changed {
			break
		}

		centroids = update(points, assignments, centroids)
	}

	return centroids, inertia, nil
}

// update computes the successor table. A cluster with no members keeps
// its previous centroid.
func update(points []core.Color, assignments []int, prev *arena.Flat) *arena.Flat {
	k := prev.Rows()
	sums := make([]core.Color, k)
	counts := make([]int, k)

	for i, p := range points {
		c := assignments[i]
		sums[c][0] += p[0]
		sums[c][1] += p[1]
		sums[c][2] += p[2]
		counts[c]++
	}

	next := prev.Clone()
	for j := 0; j < k; j++ {
		if counts[j] == 0 {
			continue
		}
		n := float64(counts[j])
		next.Set(j, core.Color{sums[j][0] / n, sums[j][1] / n, sums[j][2] / n})
	}
	return next
}

// AssignPartition finds the closest centroid for a point by squared
// Euclidean distance. Ties go to the lowest id.
func AssignPartition(p core.Color, centroids *arena.Flat) (int, float64) {
	bestCluster := 0
	minDist := math.Inf(1)

	for j := 0; j < centroids.Rows(); j++ {
		if d := distance.SquaredEuclidean(p, centroids.Row(j)); d < minDist {
			minDist = d
			bestCluster = j
		}
	}

	return bestCluster, minDist
}

// Package distance provides public API for color distance calculations.
package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/pixclust/core"
)

// SquaredEuclidean calculates the squared Euclidean distance between two colors.
func SquaredEuclidean(a, b core.Color) float64 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	return d0*d0 + d1*d1 + d2*d2
}

// Euclidean calculates the Euclidean distance between two colors.
func Euclidean(a, b core.Color) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// MaxEuclidean is the largest possible distance between two 8-bit colors.
var MaxEuclidean = math.Sqrt(3 * 255 * 255)

// Metric represents the distance metric used for color comparison.
type Metric int

// The zero value is MetricL2.
const (
	MetricL2 Metric = iota
	MetricSquaredL2
)

func (m Metric) String() string {
	switch m {
	case MetricSquaredL2:
		return "SquaredL2"
	case MetricL2:
		return "L2"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b core.Color) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricSquaredL2:
		return SquaredEuclidean, nil
	case MetricL2:
		return Euclidean, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}

// Nearest returns the index of the centroid closest to p and its distance.
// Ties go to the lowest index. It returns -1 and +Inf for an empty list.
func Nearest(p core.Color, centroids []core.Color, fn Func) (int, float64) {
	best := -1
	minDist := math.Inf(1)
	for j, c := range centroids {
		if d := fn(p, c); d < minDist {
			minDist = d
			best = j
		}
	}
	return best, minDist
}

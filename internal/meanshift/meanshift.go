// Package meanshift implements mode seeking by iterative neighborhood
// averaging over a color sample.
package meanshift

import (
	"context"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
)

// Config bounds the mode search. Radii are derived from the bandwidth.
type Config struct {
	// Seeds is the number of leading sample points used as search starts.
	Seeds int
	// MaxIter is the maximum number of shifts per seed.
	MaxIter int
	// WindowScale maps bandwidth to the neighborhood radius in color units.
	WindowScale float64
	// MergeScale maps bandwidth to the mode deduplication radius.
	MergeScale float64
	// MinShift stops a seed once a shift moves it less than this.
	MinShift float64
}

// DefaultConfig returns the bounded search used for segmentation.
func DefaultConfig() Config {
	return Config{
		Seeds:       50,
		MaxIter:     3,
		WindowScale: 50,
		MergeScale:  30,
		MinShift:    5,
	}
}

// Modes runs the mode search and returns at least one mode.
func Modes(ctx context.Context, points []core.Color, bandwidth float64, cfg Config) ([]core.Color, error) {
	if bandwidth <= 0 {
		return nil, core.NewParameterError("bandwidth", bandwidth)
	}

	radius := bandwidth * cfg.WindowScale
	windowSq := radius * radius
	mergeDist := bandwidth * cfg.MergeScale

	seeds := cfg.Seeds
	if seeds > len(points) {
		seeds = len(points)
	}

	var modes []core.Color
	for i := 0; i < seeds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := Shift(points, points[i], windowSq, cfg.MaxIter, cfg.MinShift)
		if !nearAny(modes, p, mergeDist) {
			modes = append(modes, p)
		}
	}

	if len(modes) == 0 {
		modes = append(modes, core.MidGray)
	}
	return modes, nil
}

// Shift moves start toward the local density maximum: each step replaces
// the current point with the mean of all points within squared distance
// windowSq.
func Shift(points []core.Color, start core.Color, windowSq float64, maxIter int, minShift float64) core.Color {
	current := start
	for iter := 0; iter < maxIter; iter++ {
		var sum core.Color
		count := 0
		for _, p := range points {
			if distance.SquaredEuclidean(p, current) <= windowSq {
				sum[0] += p[0]
				sum[1] += p[1]
				sum[2] += p[2]
				count++
			}
		}
		if count == 0 {
			break
		}

		n := float64(count)
		next := core.Color{sum[0] / n, sum[1] / n, sum[2] / n}
		shift := distance.Euclidean(next, current)
		current = next

		if shift < minShift {
			break
		}
	}
	return current
}

func nearAny(modes []core.Color, p core.Color, radius float64) bool {
	for _, m := range modes {
		if distance.Euclidean(m, p) < radius {
			return true
		}
	}
	return false
}

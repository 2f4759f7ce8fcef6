// Package assign labels every pixel of an image with its nearest centroid.
//
// The image is split into fixed chunks labeled concurrently. A pixel's label
// depends only on its own color and the centroid list, so the output matches
// a sequential pass exactly.
package assign

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/distance"
)

// DefaultChunkSize is the number of pixels per unit of work.
const DefaultChunkSize = 4096

// Config controls a labeling pass.
type Config struct {
	// Gate rejects assignments whose nearest distance exceeds it; rejected
	// pixels are labeled core.Noise. Zero or negative disables the gate.
	Gate float64
	// Workers caps concurrent chunks. Zero means GOMAXPROCS.
	Workers int
	// ChunkSize is the number of pixels per chunk. Zero means DefaultChunkSize.
	ChunkSize int
	// Metric is the distance used for both the nearest lookup and the gate.
	Metric distance.Metric
}

// Nearest returns one label per pixel of buf.
// With an empty centroid list every pixel is core.Noise.
func Nearest(ctx context.Context, buf *core.Buffer, centroids []core.Color, cfg Config) ([]int, error) {
	fn, err := distance.Provider(cfg.Metric)
	if err != nil {
		return nil, err
	}
	gate := math.Inf(1)
	if cfg.Gate > 0 {
		gate = cfg.Gate
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := cfg.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}

	n := buf.Len()
	labels := make([]int, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				idx, d := distance.Nearest(buf.At(i), centroids, fn)
				if idx < 0 || d > gate {
					labels[i] = core.Noise
					continue
				}
				labels[i] = idx
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return labels, nil
}

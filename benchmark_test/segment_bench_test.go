package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/pixclust"
	"github.com/hupe1980/pixclust/codec"
	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/metric"
	"github.com/hupe1980/pixclust/testutil"
)

// Run benchmarks: go test -bench=. -run=^$ ./benchmark_test/...

var bands = []core.RGB8{{200, 40, 40}, {40, 180, 60}, {30, 60, 200}, {230, 220, 90}, {20, 20, 20}}

func image(w, h int) *core.Buffer {
	return testutil.NewRNG(42).ClusteredImage(w, h, bands, 8)
}

func sizes() [][2]int {
	if testing.Short() {
		return [][2]int{{64, 48}}
	}
	return [][2]int{{64, 48}, {320, 240}, {640, 480}}
}

func BenchmarkKMeans(b *testing.B) {
	ctx := context.Background()
	for _, sz := range sizes() {
		buf := image(sz[0], sz[1])
		for _, workers := range []int{1, 0} {
			b.Run(fmt.Sprintf("%dx%d/workers=%d", sz[0], sz[1], workers), func(b *testing.B) {
				s := pixclust.New(pixclust.WithParallelism(workers))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := s.KMeans(ctx, buf, 5); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDBSCAN(b *testing.B) {
	ctx := context.Background()
	for _, sz := range sizes() {
		buf := image(sz[0], sz[1])
		b.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(b *testing.B) {
			s := pixclust.New()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.DBSCAN(ctx, buf, 0.5, 5); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMeanShift(b *testing.B) {
	ctx := context.Background()
	for _, sz := range sizes() {
		buf := image(sz[0], sz[1])
		b.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(b *testing.B) {
			s := pixclust.New()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := s.MeanShift(ctx, buf, 1.0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	buf := image(320, 240)
	res, err := pixclust.ClusterKMeans(context.Background(), buf, 5)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = metric.Evaluate(buf, res)
	}
}

func BenchmarkEncode(b *testing.B) {
	buf := image(640, 480)
	seg, err := pixclust.New().Segment(context.Background(), pixclust.Request{
		Buffer:    buf,
		Algorithm: pixclust.KMeans,
		Params:    pixclust.DefaultParams(),
	})
	if err != nil {
		b.Fatal(err)
	}

	for _, ct := range []codec.CompressionType{codec.CompressionNone, codec.CompressionLZ4, codec.CompressionZSTD} {
		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			var n int
			for i := 0; i < b.N; i++ {
				data, err := seg.Encode(codec.Default, ct)
				if err != nil {
					b.Fatal(err)
				}
				n = len(data)
			}
			b.ReportMetric(float64(n), "bytes/op")
		})
	}
}

package metric

import (
	"math"

	"github.com/hupe1980/pixclust/core"
)

// MaxSamples sets the sampling stride floor(n/MaxSamples). Images with at
// least MaxSamples pixels yield between MaxSamples and 2*MaxSamples-1
// samples.
const MaxSamples = 1000

// Fallback values reported when a metric cannot be computed.
const (
	FallbackSilhouette       = 0.5
	FallbackDaviesBouldin    = 1.0
	FallbackCalinskiHarabasz = 100.0
)

// sample is a strided subset of pixels with their labels.
type sample struct {
	colors []core.Color
	labels []int
}

// stride returns floor(n / min(MaxSamples, n)), or 0 for n == 0.
func stride(n int) int {
	if n <= 0 {
		return 0
	}
	return n / min(MaxSamples, n)
}

// strided takes every step-th pixel, where step is derived from the label
// count, together with its label.
func strided(buf *core.Buffer, labels []int) sample {
	step := stride(len(labels))
	if step == 0 || buf == nil {
		return sample{}
	}

	n := min(len(labels), buf.Len())
	s := sample{
		colors: make([]core.Color, 0, n/step+1),
		labels: make([]int, 0, n/step+1),
	}
	for i := 0; i < n; i += step {
		s.colors = append(s.colors, buf.At(i))
		s.labels = append(s.labels, labels[i])
	}
	return s
}

// groups returns the sample indices of each label in first-seen order.
func (s sample) groups() ([]int, map[int][]int) {
	var order []int
	members := make(map[int][]int)
	for i, l := range s.labels {
		if _, ok := members[l]; !ok {
			order = append(order, l)
		}
		members[l] = append(members[l], i)
	}
	return order, members
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

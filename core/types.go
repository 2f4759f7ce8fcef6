package core

// Color is a 3-channel color vector. Channels lie in [0,255] when read from
// a Buffer and may become fractional during averaging.
type Color [3]float64

// RGB8 is a displayable 8-bit color.
type RGB8 [3]uint8

// MidGray is the fallback centroid for clusters without members.
var MidGray = Color{128, 128, 128}

const (
	// Unvisited marks a sampled point DBSCAN has not looked at yet.
	// It never appears in a final label sequence.
	Unvisited = -1

	// Noise marks a pixel that belongs to no cluster (DBSCAN only).
	Noise = -2
)

// Result is a full-image partition: one label per pixel and the centroid
// list the labels index into.
type Result struct {
	Labels    []int
	Centroids []Color
}

// Mean returns the componentwise mean of colors.
// The second return value is false if colors is empty.
func Mean(colors []Color) (Color, bool) {
	if len(colors) == 0 {
		return Color{}, false
	}
	var sum Color
	for _, c := range colors {
		sum[0] += c[0]
		sum[1] += c[1]
		sum[2] += c[2]
	}
	n := float64(len(colors))
	return Color{sum[0] / n, sum[1] / n, sum[2] / n}, true
}

package metric

import (
	"math"

	"github.com/hupe1980/pixclust/core"
)

// Report holds the validity scores of one segmentation.
type Report struct {
	NumSegments      int     `json:"numSegments"`
	AverageSize      int     `json:"averageSize"`
	Silhouette       float64 `json:"silhouetteScore"`
	DaviesBouldin    float64 `json:"daviesBouldinIndex"`
	CalinskiHarabasz float64 `json:"calinskiHarabaszIndex"`
}

// Evaluate scores res against buf.
//
// Silhouette is clamped to [-1,1]; Davies-Bouldin and Calinski-Harabasz are
// clamped to be non-negative. AverageSize is the pixel count divided by the
// number of segments, or 0 without segments.
func Evaluate(buf *core.Buffer, res *core.Result) Report {
	r := Report{
		NumSegments:      len(res.Centroids),
		Silhouette:       clamp(Silhouette(buf, res.Labels), -1, 1),
		DaviesBouldin:    math.Max(0, DaviesBouldin(res.Centroids)),
		CalinskiHarabasz: math.Max(0, CalinskiHarabasz(buf, res.Centroids, res.Labels)),
	}
	if r.NumSegments > 0 && buf != nil {
		r.AverageSize = buf.Len() / r.NumSegments
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

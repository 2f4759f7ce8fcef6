package pixclust

import (
	"github.com/hupe1980/pixclust/codec"
	"github.com/hupe1980/pixclust/core"
	"github.com/hupe1980/pixclust/mask"
	"github.com/hupe1980/pixclust/metric"
	"github.com/hupe1980/pixclust/palette"
)

// Segmentation is the outcome of Segmenter.Segment.
type Segmentation struct {
	Algorithm Algorithm
	Params    Params
	Width     int
	Height    int
	Result    *core.Result
	Report    metric.Report
	// Palette holds one display color per centroid.
	Palette []core.RGB8
	// Clusters describes every label present in Result.Labels, ascending.
	Clusters []mask.Summary

	masks *mask.Set
}

// Render paints every pixel with the palette color of its label; noise is
// black.
func (s *Segmentation) Render() *core.Buffer {
	return palette.Render(s.Width, s.Height, s.Result.Labels, s.Palette)
}

// Mask returns the member pixels of label, or nil if no pixel carries it.
func (s *Segmentation) Mask(label int) *mask.Bitmap {
	return s.masks.Cluster(label)
}

// NoiseMask returns the pixels labeled core.Noise.
func (s *Segmentation) NoiseMask() *mask.Bitmap {
	return s.masks.Noise()
}

// Isolate returns a copy of src where pixels of label keep their color and
// every other pixel is dimmed. src must have the segmented dimensions.
func (s *Segmentation) Isolate(src *core.Buffer, label int) (*core.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if src.Width != s.Width || src.Height != s.Height {
		return nil, core.NewParameterError("buffer", [2]int{src.Width, src.Height})
	}
	return mask.Isolate(src, s.masks.Cluster(label)), nil
}

type segmentationHeader struct {
	Algorithm Algorithm     `json:"algorithm"`
	Params    Params        `json:"params"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Centroids []core.Color  `json:"centroids"`
	Report    metric.Report `json:"report"`
}

// Encode serialises s into a self-describing envelope: a header written with
// c (codec.Default if nil) and the label sequence compressed with ct.
func (s *Segmentation) Encode(c codec.Codec, ct codec.CompressionType) ([]byte, error) {
	h := segmentationHeader{
		Algorithm: s.Algorithm,
		Params:    s.Params,
		Width:     s.Width,
		Height:    s.Height,
		Centroids: s.Result.Centroids,
		Report:    s.Report,
	}
	data, err := codec.EncodeEnvelope(c, ct, h, s.Result.Labels)
	return data, translateError(err)
}

// DecodeSegmentation restores a Segmentation written by Encode. Palette and
// cluster summaries are derived again from the decoded result.
func DecodeSegmentation(data []byte) (*Segmentation, error) {
	var h segmentationHeader
	labels, err := codec.DecodeEnvelope(data, &h)
	if err != nil {
		return nil, translateError(err)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return nil, ErrCorruptSegmentation
	}
	if len(labels) != h.Width*h.Height {
		return nil, &ErrLabelCount{Expected: h.Width * h.Height, Actual: len(labels), cause: ErrCorruptSegmentation}
	}
	for _, l := range labels {
		if l != core.Noise && (l < 0 || l >= len(h.Centroids)) {
			return nil, ErrCorruptSegmentation
		}
	}

	if h.Centroids == nil {
		h.Centroids = []core.Color{}
	}
	res := &core.Result{Labels: labels, Centroids: h.Centroids}
	colors := palette.Generate(len(res.Centroids))
	masks := mask.Build(labels)

	return &Segmentation{
		Algorithm: h.Algorithm,
		Params:    h.Params,
		Width:     h.Width,
		Height:    h.Height,
		Result:    res,
		Report:    h.Report,
		Palette:   colors,
		Clusters:  mask.Summaries(masks, res.Centroids, colors),
		masks:     masks,
	}, nil
}

package mask

import (
	"github.com/hupe1980/pixclust/core"
)

// DimmedAlpha is the alpha of non-member pixels in an isolated view.
const DimmedAlpha = 50

// Summary describes one cluster for presentation.
type Summary struct {
	ID       int        `json:"cluster"`
	Size     int        `json:"size"`
	Color    core.RGB8  `json:"color"`
	Centroid core.Color `json:"centroid"`
}

// Summaries describes every cluster in s, ascending by label.
// colors is indexed by label with wraparound; a label without a centroid
// reports core.MidGray.
func Summaries(s *Set, centroids []core.Color, colors []core.RGB8) []Summary {
	labels := s.Labels()
	out := make([]Summary, 0, len(labels))
	for _, l := range labels {
		sum := Summary{
			ID:       l,
			Size:     s.Size(l),
			Centroid: core.MidGray,
		}
		if l < len(centroids) {
			sum.Centroid = centroids[l]
		}
		if len(colors) > 0 {
			sum.Color = colors[l%len(colors)]
		}
		out = append(out, sum)
	}
	return out
}

// Isolate returns a copy of buf where members of bm keep their original
// color at full opacity and every other pixel is black with DimmedAlpha.
func Isolate(buf *core.Buffer, bm *Bitmap) *core.Buffer {
	out := core.NewBuffer(buf.Width, buf.Height)
	for i := 0; i < out.Len(); i++ {
		out.Set(i, core.RGB8{}, DimmedAlpha)
	}
	if bm == nil {
		return out
	}
	for i := range bm.Iterator() {
		if i >= out.Len() {
			break
		}
		off := i * core.Channels
		out.Set(i, core.RGB8{buf.Pix[off], buf.Pix[off+1], buf.Pix[off+2]}, 255)
	}
	return out
}

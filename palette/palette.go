// Package palette generates display colors for cluster labels and renders
// label maps as images.
package palette

import (
	"math"

	"github.com/hupe1980/pixclust/core"
)

const (
	// Saturation and Lightness used for every generated color.
	Saturation = 0.8
	Lightness  = 0.6
)

// NoiseColor is used for pixels without a cluster.
var NoiseColor = core.RGB8{0, 0, 0}

// Generate returns k colors with hues evenly spaced around the color wheel,
// starting at red. The result depends on k only.
func Generate(k int) []core.RGB8 {
	if k <= 0 {
		return nil
	}
	colors := make([]core.RGB8, k)
	for i := range colors {
		hue := float64(i) * 360 / float64(k)
		colors[i] = HSLToRGB(hue/360, Saturation, Lightness)
	}
	return colors
}

// HSLToRGB converts hue, saturation and lightness in [0,1] to 8-bit RGB.
func HSLToRGB(h, s, l float64) core.RGB8 {
	if s == 0 {
		v := round8(l)
		return core.RGB8{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return core.RGB8{
		round8(hueToRGB(p, q, h+1.0/3)),
		round8(hueToRGB(p, q, h)),
		round8(hueToRGB(p, q, h-1.0/3)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// round8 rounds half up like Math.round would and clamps to a byte.
func round8(v float64) uint8 {
	r := math.Floor(v*255 + 0.5)
	return uint8(math.Max(0, math.Min(255, r)))
}

// Render paints each pixel with the color of its label. Labels outside the
// palette wrap around it; negative labels are painted NoiseColor. Alpha is
// always opaque.
func Render(width, height int, labels []int, colors []core.RGB8) *core.Buffer {
	out := core.NewBuffer(width, height)
	n := min(out.Len(), len(labels))
	for i := 0; i < n; i++ {
		l := labels[i]
		if l < 0 || len(colors) == 0 {
			out.Set(i, NoiseColor, 255)
			continue
		}
		out.Set(i, colors[l%len(colors)], 255)
	}
	for i := n; i < out.Len(); i++ {
		out.Set(i, NoiseColor, 255)
	}
	return out
}

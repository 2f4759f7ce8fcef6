package core

import (
	"image"
)

// Channels is the number of bytes stored per pixel (RGBA).
const Channels = 4

// Buffer is a row-major RGBA pixel grid.
// The alpha channel is carried along but ignored by clustering.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewBuffer allocates a zeroed width x height buffer.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// FromRGBA wraps the pixels of an already decoded image.
// The returned buffer shares memory with img when its stride is tight.
func FromRGBA(img *image.RGBA) *Buffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if img.Stride == w*Channels && len(img.Pix) >= w*h*Channels {
		return &Buffer{Width: w, Height: h, Pix: img.Pix[:w*h*Channels]}
	}

	buf := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*Channels]
		copy(buf.Pix[y*w*Channels:], row)
	}
	return buf
}

// Validate checks the buffer invariants: positive dimensions and
// len(Pix) == Width*Height*4.
func (b *Buffer) Validate() error {
	if b == nil {
		return NewParameterError("buffer", nil)
	}
	if b.Width <= 0 {
		return NewParameterError("width", b.Width)
	}
	if b.Height <= 0 {
		return NewParameterError("height", b.Height)
	}
	if len(b.Pix) != b.Width*b.Height*Channels {
		return NewParameterError("pix", len(b.Pix))
	}
	return nil
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.Width * b.Height
}

// At returns the RGB color of pixel i.
func (b *Buffer) At(i int) Color {
	off := i * Channels
	return Color{float64(b.Pix[off]), float64(b.Pix[off+1]), float64(b.Pix[off+2])}
}

// Set writes c with the given alpha at pixel i.
func (b *Buffer) Set(i int, c RGB8, alpha uint8) {
	off := i * Channels
	b.Pix[off] = c[0]
	b.Pix[off+1] = c[1]
	b.Pix[off+2] = c[2]
	b.Pix[off+3] = alpha
}

// Fill paints every pixel with c at full opacity.
func (b *Buffer) Fill(c RGB8) {
	for i := 0; i < b.Len(); i++ {
		b.Set(i, c, 255)
	}
}

// Colors gathers the colors of the given pixel indices.
func (b *Buffer) Colors(indices []int) []Color {
	out := make([]Color, len(indices))
	for i, idx := range indices {
		out[i] = b.At(idx)
	}
	return out
}

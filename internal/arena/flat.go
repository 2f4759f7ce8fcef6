package arena

import (
	"github.com/hupe1980/pixclust/core"
)

const dim = len(core.Color{})

// Flat is a fixed-size table of colors stored contiguously.
// Row i is addressed by offset i*3. The row count never changes after
// construction; an iteration builds the next table and swaps it in whole.
type Flat struct {
	buf []float64
}

// NewFlat creates a Flat with rows zeroed rows.
func NewFlat(rows int) *Flat {
	if rows < 0 {
		rows = 0
	}
	return &Flat{buf: make([]float64, rows*dim)}
}

// NewFlatFromColors creates a Flat holding a copy of colors.
func NewFlatFromColors(colors []core.Color) *Flat {
	f := NewFlat(len(colors))
	for i, c := range colors {
		f.Set(i, c)
	}
	return f
}

// Rows returns the number of rows.
func (f *Flat) Rows() int {
	return len(f.buf) / dim
}

// Row returns row i.
func (f *Flat) Row(i int) core.Color {
	off := i * dim
	return core.Color{f.buf[off], f.buf[off+1], f.buf[off+2]}
}

// Set overwrites row i.
func (f *Flat) Set(i int, c core.Color) {
	off := i * dim
	f.buf[off] = c[0]
	f.buf[off+1] = c[1]
	f.buf[off+2] = c[2]
}

// Clone returns a deep copy.
func (f *Flat) Clone() *Flat {
	buf := make([]float64, len(f.buf))
	copy(buf, f.buf)
	return &Flat{buf: buf}
}

// Colors returns the rows as a freshly allocated slice.
func (f *Flat) Colors() []core.Color {
	out := make([]core.Color, f.Rows())
	for i := range out {
		out[i] = f.Row(i)
	}
	return out
}

// Package mask indexes which pixels belong to which cluster.
//
// Membership is kept in compressed roaring bitmaps keyed by pixel index, so
// large uniform regions stay small and per-cluster views can be produced
// without rescanning the label sequence.
package mask

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a set of pixel indices.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates a new empty bitmap.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add adds a pixel index.
func (b *Bitmap) Add(i int) {
	b.rb.Add(uint32(i))
}

// Contains checks if a pixel index is in the bitmap.
func (b *Bitmap) Contains(i int) bool {
	return b.rb.Contains(uint32(i))
}

// Cardinality returns the number of pixels in the bitmap.
func (b *Bitmap) Cardinality() int {
	return int(b.rb.GetCardinality())
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Iterator returns the pixel indices in ascending order.
func (b *Bitmap) Iterator() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Set groups the pixels of a label sequence by label.
type Set struct {
	clusters map[int]*Bitmap
	noise    *Bitmap
	total    int
}

// Build indexes labels. Negative labels are collected as noise.
func Build(labels []int) *Set {
	s := &Set{
		clusters: make(map[int]*Bitmap),
		noise:    NewBitmap(),
		total:    len(labels),
	}
	for i, l := range labels {
		if l < 0 {
			s.noise.Add(i)
			continue
		}
		bm, ok := s.clusters[l]
		if !ok {
			bm = NewBitmap()
			s.clusters[l] = bm
		}
		bm.Add(i)
	}
	for _, bm := range s.clusters {
		bm.rb.RunOptimize()
	}
	s.noise.rb.RunOptimize()
	return s
}

// Labels returns the cluster labels present, ascending.
func (s *Set) Labels() []int {
	out := make([]int, 0, len(s.clusters))
	for l := range s.clusters {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// Cluster returns the members of label l, or nil if l has none.
func (s *Set) Cluster(l int) *Bitmap {
	return s.clusters[l]
}

// Noise returns the pixels without a cluster.
func (s *Set) Noise() *Bitmap {
	return s.noise
}

// Size returns the number of pixels labeled l.
func (s *Set) Size(l int) int {
	if bm, ok := s.clusters[l]; ok {
		return bm.Cardinality()
	}
	return 0
}

// Total returns the number of indexed pixels.
func (s *Set) Total() int {
	return s.total
}

// Package visited provides a bitset over sample indices with a dirty list
// for fast reset.
package visited

// Set tracks marked sample indices.
type Set struct {
	bits  []uint64
	dirty []int
}

// New creates a set for indices in [0,capacity). It grows on demand.
func New(capacity int) *Set {
	return &Set{
		bits:  make([]uint64, (capacity+63)/64),
		dirty: make([]int, 0, 128),
	}
}

// Mark marks i and reports whether it was unmarked before.
func (s *Set) Mark(i int) bool {
	word := i >> 6
	bit := uint64(1) << (uint(i) & 63)

	if word >= len(s.bits) {
		s.grow(word + 1)
	}
	if s.bits[word]&bit != 0 {
		return false
	}
	s.bits[word] |= bit
	s.dirty = append(s.dirty, i)
	return true
}

// Marked reports whether i is marked.
func (s *Set) Marked(i int) bool {
	word := i >> 6
	if word >= len(s.bits) {
		return false
	}
	return s.bits[word]&(uint64(1)<<(uint(i)&63)) != 0
}

// Len returns the number of marked indices.
func (s *Set) Len() int {
	return len(s.dirty)
}

// Reset unmarks every index marked since the last reset.
func (s *Set) Reset() {
	for _, i := range s.dirty {
		s.bits[i>>6] &^= uint64(1) << (uint(i) & 63)
	}
	s.dirty = s.dirty[:0]
}

func (s *Set) grow(newLen int) {
	newCap := len(s.bits) * 2
	if newCap < newLen {
		newCap = newLen
	}

	newBits := make([]uint64, newCap)
	copy(newBits, s.bits)
	s.bits = newBits
}

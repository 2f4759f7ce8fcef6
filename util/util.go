package util

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
//
// A plain RNG is meant to be owned by a single call. NewSharedRNG returns a
// variant that is safe for concurrent use and keeps advancing across calls.
type RNG struct {
	rand   *rand.Rand
	seed   int64
	mu     sync.Mutex
	shared bool
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// NewSharedRNG creates a mutex-guarded RNG for use across goroutines.
func NewSharedRNG(seed int64) *RNG {
	r := NewRNG(seed)
	r.shared = true
	return r
}

func (r *RNG) lock() {
	if r.shared {
		r.mu.Lock()
	}
}

func (r *RNG) unlock() {
	if r.shared {
		r.mu.Unlock()
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.lock()
	defer r.unlock()
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.lock()
	defer r.unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.lock()
	defer r.unlock()
	return r.rand.Float64()
}

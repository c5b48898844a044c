package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// BitPattern generates n booleans where each is true with probability density
// (0.3 = ~30% set).
func (r *RNG) BitPattern(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	pattern := make([]bool, n)
	for i := range n {
		pattern[i] = r.rand.Float64() < density
	}

	return pattern
}

// Package testutil provides deterministic helpers for tests and benchmarks.
package testutil

import (
	"math/rand"
	"strconv"
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Words generates n random words drawn from a vocabulary of the given size.
// Words are of the form "w<k>" with k in [0, vocab).
func (r *RNG) Words(n, vocab int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "w" + strconv.Itoa(r.Intn(vocab))
	}
	return out
}

// NullableWords generates n random words with roughly nullFrac of the entries
// set to nil.
func (r *RNG) NullableWords(n, vocab int, nullFrac float64) []*string {
	out := make([]*string, n)
	for i := range out {
		if r.Float64() < nullFrac {
			continue
		}
		w := "w" + strconv.Itoa(r.Intn(vocab))
		out[i] = &w
	}
	return out
}

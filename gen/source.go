// Package gen provides seeded random value generators and combinators for
// property-based testing.
//
// All randomness flows through a Source, an explicit seeded stream that is
// threaded through every generator call. Two runs with the same seed and the
// same sequence of generator invocations produce identical values, so a
// failing run can be replayed from its reported seed.
//
// Basic usage:
//
//	src := gen.NewSource(0) // unpredictable seed, recorded for replay
//	ints := gen.SliceOf(100, gen.IntRange(-50, 50))
//	xs := ints(src)
package gen

import (
	"math/rand"
	"time"
)

// Source is a seeded random stream plus the seed it was built from.
// The seed is retained so it can be reported when a property fails.
//
// A Source is a single sequential stream: it is not safe for concurrent
// use, and sharing one across goroutines without external locking breaks
// reproducibility.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource creates a Source seeded with seed.
// If seed is 0, an unpredictable time-based seed is chosen; the effective
// seed is always recorded and available via Seed.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed this Source is currently running from.
func (s *Source) Seed() int64 {
	return s.seed
}

// Reseed resets the stream deterministically to seed and records it.
// Reseed(0) re-randomizes from an unpredictable time-based seed.
func (s *Source) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(seed))
	s.seed = seed
}

// Intn returns a random int in [0, n).
// Panics if n <= 0.
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Int63n returns a random int64 in [0, n).
// Panics if n <= 0.
func (s *Source) Int63n(n int64) int64 {
	return s.rng.Int63n(n)
}

// Uint64 returns a random uint64.
func (s *Source) Uint64() uint64 {
	return s.rng.Uint64()
}

// Float64 returns a random float64 in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns a random boolean with 50% probability for each value.
func (s *Source) Bool() bool {
	return s.rng.Intn(2) == 1
}

// uint64n returns a uniform uint64 in [0, n). n must be > 0.
// Rejection sampling keeps the draw free of modulo bias.
func (s *Source) uint64n(n uint64) uint64 {
	if n&(n-1) == 0 {
		return s.rng.Uint64() & (n - 1)
	}
	// Largest value below the last incomplete multiple of n.
	limit := ^uint64(0) - (^uint64(0)%n+1)%n
	v := s.rng.Uint64()
	for v > limit {
		v = s.rng.Uint64()
	}
	return v % n
}

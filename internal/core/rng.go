package core

import (
	"hash/fnv"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// Not safe for concurrent use.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Derive returns an independent stream keyed by name and salt. Drawing from
// the derived stream never advances r.
func (r *RNG) Derive(name string, salt int64) *RNG {
	h := fnv.New64a()
	h.Write([]byte(name))
	return &RNG{
		r:    rand.New(rand.NewPCG(uint64(r.seed)^h.Sum64(), uint64(salt))),
		seed: r.seed,
	}
}

// Seed returns the seed the stream was created from.
func (r *RNG) Seed() int64 { return r.seed }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Between returns a random int in [lo, hi). It returns lo when the range is empty.
func (r *RNG) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo)
}

// Float64 returns a random float in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool { return r.r.Float64() < p }

// Weighted picks an index with probability proportional to weights.
func (r *RNG) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return r.IntN(len(weights))
	}
	x := r.r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[E any](r *RNG, items []E) E {
	return items[r.IntN(len(items))]
}

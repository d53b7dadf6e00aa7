package testutil

import (
	"math"
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a value in [0,n) following a Zipfian distribution.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// OpKind is the kind of a generated container operation.
type OpKind int

const (
	// OpInsert inserts a new value.
	OpInsert OpKind = iota
	// OpRemove removes a live value.
	OpRemove
	// OpRemoveMissing removes an index or key that is not live.
	OpRemoveMissing
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpRemoveMissing:
		return "remove-missing"
	default:
		return "unknown"
	}
}

// Op is a generated container operation. Pick is a non-negative random
// number the caller maps onto its current live set (e.g. Pick % len(live)).
type Op struct {
	Kind OpKind
	Pick int
}

// Ops generates n operations. insertBias is the probability of OpInsert;
// the remaining operations are removals, one in ten of which targets a
// missing element.
func (r *RNG) Ops(n int, insertBias float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		kind := OpInsert
		if r.rand.Float64() >= insertBias {
			kind = OpRemove
			if r.rand.Intn(10) == 0 {
				kind = OpRemoveMissing
			}
		}
		ops[i] = Op{Kind: kind, Pick: r.rand.Intn(math.MaxInt32)}
	}
	return ops
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Intn(1000)
	b := rng.Intn(1000)

	rng.Reset()
	assert.Equal(t, a, rng.Intn(1000))
	assert.Equal(t, b, rng.Intn(1000))
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestZipf(t *testing.T) {
	rng := NewRNG(4711)

	counts := make([]int, 10)
	for range 10000 {
		k := rng.Zipf(10, 1.5)
		assert.GreaterOrEqual(t, k, 0)
		assert.Less(t, k, 10)
		counts[k]++
	}
	assert.Greater(t, counts[0], counts[9], "head must be hotter than tail")
	assert.Equal(t, 0, rng.Zipf(1, 1.5))
}

func TestOps(t *testing.T) {
	rng := NewRNG(4711)
	ops := rng.Ops(1000, 0.7)
	assert.Len(t, ops, 1000)

	var inserts, removes, missing int
	for _, op := range ops {
		assert.GreaterOrEqual(t, op.Pick, 0)
		switch op.Kind {
		case OpInsert:
			inserts++
		case OpRemove:
			removes++
		case OpRemoveMissing:
			missing++
		}
	}
	assert.Greater(t, inserts, removes)
	assert.Greater(t, removes, missing)
	assert.Equal(t, 1000, inserts+removes+missing)

	// Same seed, same sequence.
	assert.Equal(t, ops, NewRNG(4711).Ops(1000, 0.7))
}

func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "remove-missing", OpRemoveMissing.String())
	assert.Equal(t, "unknown", OpKind(42).String())
}

package containers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"index", &ErrIndexNotFound{Index: 3}, ErrNotFound, "index 3 not found"},
		{"key", &ErrKeyNotFound{Key: "a"}, ErrNotFound, "key a not found"},
		{"capacity", &ErrCapacity{Capacity: 8}, ErrCapacityExceeded, "capacity exceeded: fixed capacity 8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.msg)
			assert.ErrorIs(t, tt.err, tt.sentinel)

			wrapped := fmt.Errorf("insert: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
		})
	}

	assert.False(t, errors.Is(&ErrCapacity{}, ErrNotFound))
}

func TestErrors_As(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &ErrIndexNotFound{Index: 7})

	var idxErr *ErrIndexNotFound
	if assert.ErrorAs(t, err, &idxErr) {
		assert.Equal(t, 7, idxErr.Index)
	}
}

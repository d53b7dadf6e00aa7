package containers

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned (or panicked with) when an index or key is not live.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded is returned (or panicked with) when a fixed-capacity
	// container is full.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// ErrIndexNotFound indicates an access to a public index or position that is
// not currently live.
//
// It unwraps to ErrNotFound.
type ErrIndexNotFound struct {
	Index int
}

func (e *ErrIndexNotFound) Error() string {
	return fmt.Sprintf("index %d not found", e.Index)
}

func (e *ErrIndexNotFound) Unwrap() error { return ErrNotFound }

// ErrKeyNotFound indicates an access to a key that has no live entry.
//
// It unwraps to ErrNotFound.
type ErrKeyNotFound struct {
	Key any
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("key %v not found", e.Key)
}

func (e *ErrKeyNotFound) Unwrap() error { return ErrNotFound }

// ErrCapacity indicates a push past the end of a fixed-capacity array.
//
// It unwraps to ErrCapacityExceeded.
type ErrCapacity struct {
	Capacity int
}

func (e *ErrCapacity) Error() string {
	return fmt.Sprintf("capacity exceeded: fixed capacity %d", e.Capacity)
}

func (e *ErrCapacity) Unwrap() error { return ErrCapacityExceeded }

package backing

import "github.com/hupe1980/containers"

// Slice is a growable Array backed by a Go slice.
type Slice[T any] struct {
	items []T
}

// NewSlice creates a Slice with the given initial capacity.
func NewSlice[T any](capacity int) *Slice[T] {
	return &Slice[T]{items: make([]T, 0, max(capacity, 0))}
}

// Push appends v.
func (s *Slice[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the last element.
func (s *Slice[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero // release references held by the vacated slot
	s.items = s.items[:n-1]
	return v, true
}

// SwapRemove removes the element at position i and returns it.
func (s *Slice[T]) SwapRemove(i int) T {
	n := len(s.items)
	if i < 0 || i >= n {
		panic(&containers.ErrIndexNotFound{Index: i})
	}
	v := s.items[i]
	s.items[i] = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Cap returns the capacity of the underlying slice.
func (s *Slice[T]) Cap() int {
	return cap(s.items)
}

// Get returns the element at position i.
func (s *Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// GetPtr returns a pointer to the element at position i, or nil.
// The pointer is invalidated by the next Push that grows the slice.
func (s *Slice[T]) GetPtr(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}

// GetUnchecked returns the element at position i.
func (s *Slice[T]) GetUnchecked(i int) T {
	return s.items[i]
}

// GetUncheckedPtr returns a pointer to the element at position i.
func (s *Slice[T]) GetUncheckedPtr(i int) *T {
	return &s.items[i]
}

// Clear removes all elements and keeps the allocation.
func (s *Slice[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Items returns the live elements as a slice sharing storage with s.
func (s *Slice[T]) Items() []T {
	return s.items
}

package backing

import "github.com/hupe1980/containers"

// Fixed is an Array with a capacity chosen at construction. Storage is
// allocated once and never reallocated; a length cursor tracks the live
// prefix.
type Fixed[T any] struct {
	items []T
	n     int
}

// NewFixed creates a Fixed array holding at most capacity elements.
func NewFixed[T any](capacity int) *Fixed[T] {
	return &Fixed[T]{items: make([]T, max(capacity, 0))}
}

// Push appends v. It panics with *containers.ErrCapacity when the array is
// full.
func (f *Fixed[T]) Push(v T) {
	if err := f.TryPush(v); err != nil {
		panic(err)
	}
}

// TryPush appends v or returns *containers.ErrCapacity when the array is full.
func (f *Fixed[T]) TryPush(v T) error {
	if f.n == len(f.items) {
		return &containers.ErrCapacity{Capacity: len(f.items)}
	}
	f.items[f.n] = v
	f.n++
	return nil
}

// Pop removes and returns the last element.
func (f *Fixed[T]) Pop() (T, bool) {
	var zero T
	if f.n == 0 {
		return zero, false
	}
	f.n--
	v := f.items[f.n]
	f.items[f.n] = zero
	return v, true
}

// SwapRemove removes the element at position i and returns it.
func (f *Fixed[T]) SwapRemove(i int) T {
	if i < 0 || i >= f.n {
		panic(&containers.ErrIndexNotFound{Index: i})
	}
	v := f.items[i]
	f.n--
	f.items[i] = f.items[f.n]
	var zero T
	f.items[f.n] = zero
	return v
}

// Len returns the number of elements.
func (f *Fixed[T]) Len() int {
	return f.n
}

// Cap returns the fixed capacity.
func (f *Fixed[T]) Cap() int {
	return len(f.items)
}

// MaxLen implements Bounded.
func (f *Fixed[T]) MaxLen() int {
	return len(f.items)
}

// Full reports whether another Push would exceed the capacity.
func (f *Fixed[T]) Full() bool {
	return f.n == len(f.items)
}

// Get returns the element at position i.
func (f *Fixed[T]) Get(i int) (T, bool) {
	if i < 0 || i >= f.n {
		var zero T
		return zero, false
	}
	return f.items[i], true
}

// GetPtr returns a pointer to the element at position i, or nil.
// Pointers stay valid for the lifetime of f; the slot may later hold a
// different element.
func (f *Fixed[T]) GetPtr(i int) *T {
	if i < 0 || i >= f.n {
		return nil
	}
	return &f.items[i]
}

// GetUnchecked returns the element at position i.
// Positions in [Len, Cap) are readable and hold zero values.
func (f *Fixed[T]) GetUnchecked(i int) T {
	return f.items[i]
}

// GetUncheckedPtr returns a pointer to the element at position i.
func (f *Fixed[T]) GetUncheckedPtr(i int) *T {
	return &f.items[i]
}

// Clear removes all elements.
func (f *Fixed[T]) Clear() {
	clear(f.items[:f.n])
	f.n = 0
}

// Items returns the live elements as a slice sharing storage with f.
func (f *Fixed[T]) Items() []T {
	return f.items[:f.n]
}

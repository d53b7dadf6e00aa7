// Package stringmap provides Map, a string-keyed map stored as two parallel
// sorted slices.
//
// Lookups are a binary search, and insertions and removals shift the tail of
// both slices. For small key sets this is compact and iterates in key order;
// for large or write-heavy ones a builtin map is faster.
package stringmap

import (
	"iter"
	"slices"

	"github.com/hupe1980/containers"
)

// Map is a sorted-vector map from string keys to values of type T.
//
// The zero Map is empty and ready to use. A Map is not safe for concurrent
// use.
type Map[T any] struct {
	keys   []string
	values []T
}

// New creates an empty Map with room for capacity entries.
func New[T any](capacity int) *Map[T] {
	capacity = max(capacity, 0)
	return &Map[T]{
		keys:   make([]string, 0, capacity),
		values: make([]T, 0, capacity),
	}
}

// Search returns the position of key in Keys and true if key is present.
// Otherwise it returns the position where key would be inserted and false.
func (m *Map[T]) Search(key string) (int, bool) {
	return slices.BinarySearch(m.keys, key)
}

// Insert sets key to value. If key was present, the previous value is
// returned with true.
func (m *Map[T]) Insert(key string, value T) (T, bool) {
	i, found := m.Search(key)
	if found {
		prev := m.values[i]
		m.values[i] = value
		return prev, true
	}

	m.keys = slices.Insert(m.keys, i, key)
	m.values = slices.Insert(m.values, i, value)

	var zero T
	return zero, false
}

// Remove deletes key and returns its value, if present.
func (m *Map[T]) Remove(key string) (T, bool) {
	i, found := m.Search(key)
	if !found {
		var zero T
		return zero, false
	}

	prev := m.values[i]
	m.keys = slices.Delete(m.keys, i, i+1)
	m.values = slices.Delete(m.values, i, i+1)
	return prev, true
}

// Get returns the value for key.
func (m *Map[T]) Get(key string) (T, bool) {
	if i, found := m.Search(key); found {
		return m.values[i], true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer to the value for key, or nil. The pointer is
// invalidated by the next Insert of a new key or Remove.
func (m *Map[T]) GetPtr(key string) *T {
	if i, found := m.Search(key); found {
		return &m.values[i]
	}
	return nil
}

// At returns the value for key.
//
// It panics with *containers.ErrKeyNotFound if key is absent.
func (m *Map[T]) At(key string) T {
	i, found := m.Search(key)
	if !found {
		panic(&containers.ErrKeyNotFound{Key: key})
	}
	return m.values[i]
}

// ContainsKey reports whether key is present.
func (m *Map[T]) ContainsKey(key string) bool {
	_, found := m.Search(key)
	return found
}

// Keys returns the keys in ascending order. The slice is owned by the Map
// and must not be modified.
func (m *Map[T]) Keys() []string { return m.keys }

// Values returns the values in key order. The slice is owned by the Map;
// elements may be modified in place.
func (m *Map[T]) Values() []T { return m.values }

// Items iterates (key, value) pairs in ascending key order.
func (m *Map[T]) Items() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (m *Map[T]) Len() int { return len(m.keys) }

// Clear removes all entries and keeps the allocated storage.
func (m *Map[T]) Clear() {
	clear(m.values)
	m.keys = m.keys[:0]
	m.values = m.values[:0]
}

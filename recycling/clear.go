package recycling

import (
	"bytes"
	"errors"
	"maps"
	"slices"
)

// Clearer is implemented by values that can be reset to a pristine state
// while keeping their allocations.
//
// backing, sparse, stringmap and the containers of this package all implement
// Clearer, so they can be nested inside one another.
type Clearer interface {
	Clear()
}

// Cloner is implemented by element types that can produce an independent
// copy of themselves. Vec.Clone and Map.Clone use it when no dup function is
// given.
type Cloner[T any] interface {
	Clone() T
}

// ErrNotClonable is panicked by Clone when no dup function is given and the
// element type does not implement Cloner.
var ErrNotClonable = errors.New("recycling: element type does not implement Cloner")

// Resettable constrains the pointer type PT of an element type T to
// implement Clearer.
type Resettable[T any] interface {
	*T
	Clearer
}

// Int is an int that resets to 0.
type Int int

// Clear resets i to 0.
func (i *Int) Clear() { *i = 0 }

// Clone implements Cloner.
func (i Int) Clone() Int { return i }

// Uint is a uint that resets to 0.
type Uint uint

// Clear resets u to 0.
func (u *Uint) Clear() { *u = 0 }

// Clone implements Cloner.
func (u Uint) Clone() Uint { return u }

// Slice is a slice that resets to length 0 and keeps its capacity.
type Slice[T any] []T

// Clear zeroes the elements so they can be collected, then truncates.
func (s *Slice[T]) Clear() {
	clear(*s)
	*s = (*s)[:0]
}

// Clone returns a copy with its own backing array. Elements are copied
// shallowly.
func (s Slice[T]) Clone() Slice[T] { return slices.Clone(s) }

// Table is a map that resets by deleting all entries. The runtime keeps the
// buckets.
type Table[K comparable, V any] map[K]V

// Clear deletes all entries.
func (t *Table[K, V]) Clear() { clear(*t) }

// Clone returns a copy with its own buckets. Values are copied shallowly.
func (t Table[K, V]) Clone() Table[K, V] { return maps.Clone(t) }

// Put stores v at k, allocating the map on first use.
func (t *Table[K, V]) Put(k K, v V) {
	if *t == nil {
		*t = make(Table[K, V])
	}
	(*t)[k] = v
}

// Set is a hash set that resets by deleting all members.
type Set[K comparable] map[K]struct{}

// Clear deletes all members.
func (s *Set[K]) Clear() { clear(*s) }

// Clone returns a copy with its own buckets.
func (s Set[K]) Clone() Set[K] { return maps.Clone(s) }

// Add inserts k, allocating the set on first use.
func (s *Set[K]) Add(k K) {
	if *s == nil {
		*s = make(Set[K])
	}
	(*s)[k] = struct{}{}
}

// Has reports whether k is a member.
func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// Buffer is a bytes.Buffer that resets with Reset, retaining its storage.
type Buffer struct {
	bytes.Buffer
}

// Clear empties the buffer and keeps its storage.
func (b *Buffer) Clear() { b.Reset() }

// Clone returns a buffer holding a copy of the unread bytes.
func (b *Buffer) Clone() Buffer {
	var c Buffer
	c.Write(b.Bytes())
	return c
}

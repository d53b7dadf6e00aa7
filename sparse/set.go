package sparse

import (
	"iter"

	"github.com/hupe1980/containers"
	"github.com/hupe1980/containers/backing"
)

// Entry is a live value of a SetOf paired with its public index.
type Entry[T any] struct {
	Index int
	Value T
}

// SetOf is a sparse store whose dense array holds (index, value) entries.
type SetOf[T any, D backing.Array[Entry[T]], I backing.Array[int]] struct {
	data      D
	positions I
	free      I
	logger    *containers.Logger
}

// Set is a SetOf backed by growable slices.
type Set[T any] = SetOf[T, *backing.Slice[Entry[T]], *backing.Slice[int]]

// FixedSet is a SetOf whose arrays never reallocate.
type FixedSet[T any] = SetOf[T, *backing.Fixed[Entry[T]], *backing.Fixed[int]]

// NewSet creates an empty growable set.
func NewSet[T any](optFns ...Option) *Set[T] {
	o := applyOptions(optFns)
	return newSetOf[T](
		backing.NewSlice[Entry[T]](o.capacity),
		backing.NewSlice[int](o.capacity),
		backing.NewSlice[int](0),
		o,
	)
}

// NewFixedSet creates an empty set holding at most capacity values.
func NewFixedSet[T any](capacity int, optFns ...Option) *FixedSet[T] {
	o := applyOptions(optFns)
	return newSetOf[T](
		backing.NewFixed[Entry[T]](capacity),
		backing.NewFixed[int](capacity),
		backing.NewFixed[int](capacity),
		o,
	)
}

// NewSetOf creates a set over caller-provided arrays. All arrays must be
// empty and distinct.
func NewSetOf[T any, D backing.Array[Entry[T]], I backing.Array[int]](data D, positions, free I, optFns ...Option) *SetOf[T, D, I] {
	return newSetOf[T](data, positions, free, applyOptions(optFns))
}

func newSetOf[T any, D backing.Array[Entry[T]], I backing.Array[int]](data D, positions, free I, o options) *SetOf[T, D, I] {
	return &SetOf[T, D, I]{
		data:      data,
		positions: positions,
		free:      free,
		logger:    o.logger,
	}
}

// Insert stores value and returns its public index, reusing the most
// recently freed index first.
//
// Insert panics with *containers.ErrCapacity when a bounded set is full.
func (s *SetOf[T, D, I]) Insert(value T) int {
	n, err := s.TryInsert(value)
	if err != nil {
		panic(err)
	}
	return n
}

// TryInsert is like Insert but returns *containers.ErrCapacity instead of
// panicking when a bounded set is full.
func (s *SetOf[T, D, I]) TryInsert(value T) (int, error) {
	if err := checkCapacity[Entry[T]](s.data, s.logger); err != nil {
		return vacant, err
	}

	position := s.data.Len()

	var n int
	if free, ok := s.free.Pop(); ok {
		n = free
		*s.positions.GetUncheckedPtr(n) = position
	} else {
		n = s.positions.Len()
		s.positions.Push(position)
	}

	s.data.Push(Entry[T]{Index: n, Value: value})

	return n, nil
}

// Remove removes the value at public index n and reports whether it was
// live.
func (s *SetOf[T, D, I]) Remove(n int) bool {
	position, ok := s.position(n)
	if !ok {
		return false
	}

	last := s.data.Len() - 1
	s.data.SwapRemove(position)

	if position != last {
		moved := s.data.GetUncheckedPtr(position).Index
		*s.positions.GetUncheckedPtr(moved) = position
	}
	*s.positions.GetUncheckedPtr(n) = vacant
	s.free.Push(n)

	return true
}

// Len returns the number of live values.
func (s *SetOf[T, D, I]) Len() int {
	return s.data.Len()
}

// IsEmpty reports whether the set holds no live values.
func (s *SetOf[T, D, I]) IsEmpty() bool {
	return s.data.Len() == 0
}

// Contains reports whether public index n is live.
func (s *SetOf[T, D, I]) Contains(n int) bool {
	_, ok := s.position(n)
	return ok
}

func (s *SetOf[T, D, I]) position(n int) (int, bool) {
	if n < 0 || n >= s.positions.Len() {
		return vacant, false
	}
	p := s.positions.GetUnchecked(n)
	return p, p != vacant
}

// Get returns the value at public index n.
func (s *SetOf[T, D, I]) Get(n int) (T, bool) {
	position, ok := s.position(n)
	if !ok {
		var zero T
		return zero, false
	}
	return s.data.GetUncheckedPtr(position).Value, true
}

// GetPtr returns a pointer to the value at public index n, or nil.
func (s *SetOf[T, D, I]) GetPtr(n int) *T {
	position, ok := s.position(n)
	if !ok {
		return nil
	}
	return &s.data.GetUncheckedPtr(position).Value
}

// GetUnchecked returns the value at public index n. n must be live.
func (s *SetOf[T, D, I]) GetUnchecked(n int) T {
	return s.data.GetUncheckedPtr(s.positions.GetUnchecked(n)).Value
}

// GetUncheckedPtr returns a pointer to the value at public index n. n must
// be live.
func (s *SetOf[T, D, I]) GetUncheckedPtr(n int) *T {
	return &s.data.GetUncheckedPtr(s.positions.GetUnchecked(n)).Value
}

// At returns the value at public index n. It panics with
// *containers.ErrIndexNotFound if n is not live.
func (s *SetOf[T, D, I]) At(n int) T {
	return *s.AtPtr(n)
}

// AtPtr returns a pointer to the value at public index n. It panics with
// *containers.ErrIndexNotFound if n is not live.
func (s *SetOf[T, D, I]) AtPtr(n int) *T {
	p := s.GetPtr(n)
	if p == nil {
		panic(&containers.ErrIndexNotFound{Index: n})
	}
	return p
}

// Clear removes all values and forgets all public indices.
func (s *SetOf[T, D, I]) Clear() {
	s.data.Clear()
	s.positions.Clear()
	s.free.Clear()
}

// Data returns the dense entry array.
func (s *SetOf[T, D, I]) Data() D {
	return s.data
}

// Items returns an iterator over (public index, value) pairs in dense order.
func (s *SetOf[T, D, I]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for p := range s.data.Len() {
			e := s.data.GetUncheckedPtr(p)
			if !yield(e.Index, e.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over live public indices in dense order.
func (s *SetOf[T, D, I]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for p := range s.data.Len() {
			if !yield(s.data.GetUncheckedPtr(p).Index) {
				return
			}
		}
	}
}

// Values returns an iterator over live values in dense order.
func (s *SetOf[T, D, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range s.data.Len() {
			if !yield(s.data.GetUncheckedPtr(p).Value) {
				return
			}
		}
	}
}

// ValuePtrs returns an iterator over pointers to live values in dense order.
func (s *SetOf[T, D, I]) ValuePtrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := range s.data.Len() {
			if !yield(&s.data.GetUncheckedPtr(p).Value) {
				return
			}
		}
	}
}

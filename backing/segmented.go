package backing

import "github.com/hupe1980/containers"

const (
	// segmentBits determines the size of each segment.
	// 10 bits = 1024 items per segment.
	segmentBits = 10
	segmentSize = 1 << segmentBits
	segmentMask = segmentSize - 1
)

// Segmented is a growable Array made of fixed-size segments.
// Growth appends a segment instead of copying existing elements, so pointers
// returned by GetPtr stay valid while the array grows. Segments are retained
// when the array shrinks.
type Segmented[T any] struct {
	segments []*segment[T]
	n        int
}

// segment is a fixed-size array of items.
type segment[T any] struct {
	items [segmentSize]T
}

// NewSegmented creates an empty Segmented array.
func NewSegmented[T any]() *Segmented[T] {
	return &Segmented[T]{}
}

// Push appends v, allocating a new segment when the last one is full.
func (s *Segmented[T]) Push(v T) {
	segIdx := s.n >> segmentBits
	if segIdx == len(s.segments) {
		s.segments = append(s.segments, &segment[T]{})
	}
	s.segments[segIdx].items[s.n&segmentMask] = v
	s.n++
}

// Pop removes and returns the last element.
func (s *Segmented[T]) Pop() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	s.n--
	slot := s.slot(s.n)
	v := *slot
	*slot = zero
	return v, true
}

// SwapRemove removes the element at position i and returns it.
func (s *Segmented[T]) SwapRemove(i int) T {
	if i < 0 || i >= s.n {
		panic(&containers.ErrIndexNotFound{Index: i})
	}
	slot := s.slot(i)
	v := *slot
	last, _ := s.Pop()
	if i < s.n {
		*slot = last
	}
	return v
}

// Len returns the number of elements.
func (s *Segmented[T]) Len() int {
	return s.n
}

// Segments returns the number of allocated segments.
func (s *Segmented[T]) Segments() int {
	return len(s.segments)
}

// Get returns the element at position i.
func (s *Segmented[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.n {
		var zero T
		return zero, false
	}
	return *s.slot(i), true
}

// GetPtr returns a pointer to the element at position i, or nil.
func (s *Segmented[T]) GetPtr(i int) *T {
	if i < 0 || i >= s.n {
		return nil
	}
	return s.slot(i)
}

// GetUnchecked returns the element at position i.
func (s *Segmented[T]) GetUnchecked(i int) T {
	return *s.slot(i)
}

// GetUncheckedPtr returns a pointer to the element at position i.
func (s *Segmented[T]) GetUncheckedPtr(i int) *T {
	return s.slot(i)
}

// Clear removes all elements and keeps the segments.
func (s *Segmented[T]) Clear() {
	for i, seg := range s.segments {
		if i<<segmentBits >= s.n {
			break
		}
		clear(seg.items[:])
	}
	s.n = 0
}

func (s *Segmented[T]) slot(i int) *T {
	return &s.segments[i>>segmentBits].items[i&segmentMask]
}

package sparse

import (
	"iter"

	"github.com/hupe1980/containers"
	"github.com/hupe1980/containers/backing"
)

// vacant marks a public index with no live value.
const vacant = -1

// VecOf is a sparse store with a dense value array.
//
// data holds the live values, owners[p] is the public index of data[p], and
// positions[n] is the position of public index n in data (or vacant). free
// holds vacant public indices for reuse, most recently freed last.
type VecOf[T any, D backing.Array[T], I backing.Array[int]] struct {
	data      D
	owners    I
	positions I
	free      I
	logger    *containers.Logger
}

// Vec is a VecOf backed by growable slices.
type Vec[T any] = VecOf[T, *backing.Slice[T], *backing.Slice[int]]

// FixedVec is a VecOf whose arrays never reallocate. Its capacity is fixed
// at construction.
type FixedVec[T any] = VecOf[T, *backing.Fixed[T], *backing.Fixed[int]]

// SegmentedVec is a VecOf whose values live in a segmented array, so
// pointers from GetPtr survive inserts (but not removals, which move the
// last value).
type SegmentedVec[T any] = VecOf[T, *backing.Segmented[T], *backing.Slice[int]]

// New creates an empty growable store.
func New[T any](optFns ...Option) *Vec[T] {
	o := applyOptions(optFns)
	return newVecOf[T](
		backing.NewSlice[T](o.capacity),
		backing.NewSlice[int](o.capacity),
		backing.NewSlice[int](o.capacity),
		backing.NewSlice[int](0),
		o,
	)
}

// NewFixed creates an empty store holding at most capacity values.
func NewFixed[T any](capacity int, optFns ...Option) *FixedVec[T] {
	o := applyOptions(optFns)
	return newVecOf[T](
		backing.NewFixed[T](capacity),
		backing.NewFixed[int](capacity),
		backing.NewFixed[int](capacity),
		backing.NewFixed[int](capacity),
		o,
	)
}

// NewSegmented creates an empty store with segmented value storage.
func NewSegmented[T any](optFns ...Option) *SegmentedVec[T] {
	o := applyOptions(optFns)
	return newVecOf[T](
		backing.NewSegmented[T](),
		backing.NewSlice[int](o.capacity),
		backing.NewSlice[int](o.capacity),
		backing.NewSlice[int](0),
		o,
	)
}

// NewVecOf creates a store over caller-provided arrays. All arrays must be
// empty and distinct.
func NewVecOf[T any, D backing.Array[T], I backing.Array[int]](data D, owners, positions, free I, optFns ...Option) *VecOf[T, D, I] {
	return newVecOf[T](data, owners, positions, free, applyOptions(optFns))
}

func newVecOf[T any, D backing.Array[T], I backing.Array[int]](data D, owners, positions, free I, o options) *VecOf[T, D, I] {
	return &VecOf[T, D, I]{
		data:      data,
		owners:    owners,
		positions: positions,
		free:      free,
		logger:    o.logger,
	}
}

// Insert stores value and returns its public index. The most recently freed
// index is reused first; otherwise a new index is minted.
//
// Insert panics with *containers.ErrCapacity when a bounded store is full.
func (v *VecOf[T, D, I]) Insert(value T) int {
	n, err := v.TryInsert(value)
	if err != nil {
		panic(err)
	}
	return n
}

// TryInsert is like Insert but returns *containers.ErrCapacity instead of
// panicking when a bounded store is full.
func (v *VecOf[T, D, I]) TryInsert(value T) (int, error) {
	if err := checkCapacity[T](v.data, v.logger); err != nil {
		return vacant, err
	}

	position := v.data.Len()

	var n int
	if free, ok := v.free.Pop(); ok {
		n = free
		*v.positions.GetUncheckedPtr(n) = position
	} else {
		n = v.positions.Len()
		v.positions.Push(position)
	}

	v.data.Push(value)
	v.owners.Push(n)

	return n, nil
}

// Remove removes the value at public index n and returns it. The last value
// in dense order moves into the vacated position. Index n becomes vacant and
// is the first candidate for reuse.
func (v *VecOf[T, D, I]) Remove(n int) (T, bool) {
	position, ok := v.position(n)
	if !ok {
		var zero T
		return zero, false
	}

	last := v.data.Len() - 1
	removed := v.data.SwapRemove(position)
	v.owners.SwapRemove(position)

	if position != last {
		moved := v.owners.GetUnchecked(position)
		*v.positions.GetUncheckedPtr(moved) = position
	}
	*v.positions.GetUncheckedPtr(n) = vacant
	v.free.Push(n)

	return removed, true
}

// Len returns the number of live values.
func (v *VecOf[T, D, I]) Len() int {
	return v.data.Len()
}

// IsEmpty reports whether the store holds no live values.
func (v *VecOf[T, D, I]) IsEmpty() bool {
	return v.data.Len() == 0
}

// Contains reports whether public index n is live.
func (v *VecOf[T, D, I]) Contains(n int) bool {
	_, ok := v.position(n)
	return ok
}

// position returns the dense position of public index n.
func (v *VecOf[T, D, I]) position(n int) (int, bool) {
	if n < 0 || n >= v.positions.Len() {
		return vacant, false
	}
	p := v.positions.GetUnchecked(n)
	return p, p != vacant
}

// Get returns the value at public index n.
func (v *VecOf[T, D, I]) Get(n int) (T, bool) {
	position, ok := v.position(n)
	if !ok {
		var zero T
		return zero, false
	}
	return v.data.GetUnchecked(position), true
}

// GetPtr returns a pointer to the value at public index n, or nil. The
// pointer is valid until the next Insert or Remove.
func (v *VecOf[T, D, I]) GetPtr(n int) *T {
	position, ok := v.position(n)
	if !ok {
		return nil
	}
	return v.data.GetUncheckedPtr(position)
}

// GetUnchecked returns the value at public index n. n must be live.
func (v *VecOf[T, D, I]) GetUnchecked(n int) T {
	return v.data.GetUnchecked(v.positions.GetUnchecked(n))
}

// GetUncheckedPtr returns a pointer to the value at public index n. n must
// be live.
func (v *VecOf[T, D, I]) GetUncheckedPtr(n int) *T {
	return v.data.GetUncheckedPtr(v.positions.GetUnchecked(n))
}

// At returns the value at public index n. It panics with
// *containers.ErrIndexNotFound if n is not live.
func (v *VecOf[T, D, I]) At(n int) T {
	return *v.AtPtr(n)
}

// AtPtr returns a pointer to the value at public index n. It panics with
// *containers.ErrIndexNotFound if n is not live.
func (v *VecOf[T, D, I]) AtPtr(n int) *T {
	p := v.GetPtr(n)
	if p == nil {
		panic(&containers.ErrIndexNotFound{Index: n})
	}
	return p
}

// Clear removes all values and forgets all public indices. Backing arrays
// keep their allocations.
func (v *VecOf[T, D, I]) Clear() {
	v.data.Clear()
	v.owners.Clear()
	v.positions.Clear()
	v.free.Clear()
}

// Data returns the dense value array. Its order is unspecified.
func (v *VecOf[T, D, I]) Data() D {
	return v.data
}

// Items returns an iterator over (public index, value) pairs in dense order.
func (v *VecOf[T, D, I]) Items() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for p := range v.data.Len() {
			if !yield(v.owners.GetUnchecked(p), v.data.GetUnchecked(p)) {
				return
			}
		}
	}
}

// Keys returns an iterator over live public indices in dense order.
func (v *VecOf[T, D, I]) Keys() iter.Seq[int] {
	return func(yield func(int) bool) {
		for p := range v.owners.Len() {
			if !yield(v.owners.GetUnchecked(p)) {
				return
			}
		}
	}
}

// Values returns an iterator over live values in dense order.
func (v *VecOf[T, D, I]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range v.data.Len() {
			if !yield(v.data.GetUnchecked(p)) {
				return
			}
		}
	}
}

// ValuePtrs returns an iterator over pointers to live values in dense order.
func (v *VecOf[T, D, I]) ValuePtrs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for p := range v.data.Len() {
			if !yield(v.data.GetUncheckedPtr(p)) {
				return
			}
		}
	}
}

func checkCapacity[T any](data backing.Array[T], logger *containers.Logger) error {
	b, ok := data.(backing.Bounded)
	if !ok || data.Len() < b.MaxLen() {
		return nil
	}
	logger.LogCapacityExceeded(b.MaxLen())
	return &containers.ErrCapacity{Capacity: b.MaxLen()}
}

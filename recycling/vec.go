package recycling

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/containers"
)

// Vec is a stack of elements that are reset and parked instead of dropped.
//
// The zero Vec is empty and ready to use, without logging or stats. A Vec is
// not safe for concurrent use.
type Vec[T any, PT Resettable[T]] struct {
	vec  []PT
	dead []PT

	hooks
}

// NewVec creates an empty Vec. The pointer type is inferred:
//
//	v := recycling.NewVec[recycling.Slice[int]]()
func NewVec[T any, PT Resettable[T]](optFns ...Option) *Vec[T, PT] {
	o := applyOptions(optFns)
	return &Vec[T, PT]{
		vec:   make([]PT, 0, o.capacity),
		hooks: newHooks(o),
	}
}

// Push appends an element and returns it.
//
// If a parked element is available it is reused and init, when non-nil, is
// applied to it. Otherwise ctor builds the element and init is not called.
func (v *Vec[T, PT]) Push(ctor func() T, init func(PT)) PT {
	if p, ok := v.PushRecycled(init); ok {
		return p
	}

	v.construct(len(v.vec))

	p := PT(new(T))
	*p = ctor()
	v.vec = append(v.vec, p)
	return p
}

// PushDefault appends a parked element, or a zero T if the pool is empty.
//
// The zero value of T should be indistinguishable from a cleared one.
func (v *Vec[T, PT]) PushDefault() PT {
	return v.Push(zero[T], nil)
}

// PushRecycled appends a parked element with init applied and returns it.
// It returns false and leaves the Vec unchanged if the pool is empty.
func (v *Vec[T, PT]) PushRecycled(init func(PT)) (PT, bool) {
	p, ok := popDead(&v.dead)
	if !ok {
		return nil, false
	}
	v.recycle()

	if init != nil {
		init(p)
	}
	v.vec = append(v.vec, p)
	return p, true
}

// Pop clears the last element and parks it. It is a no-op on an empty Vec.
//
// Nothing is returned: the Vec keeps ownership of the element.
func (v *Vec[T, PT]) Pop() {
	last := len(v.vec) - 1
	if last < 0 {
		return
	}

	p := v.vec[last]
	v.vec[last] = nil
	v.vec = v.vec[:last]

	p.Clear()
	v.dead = append(v.dead, p)
	v.park(1)
}

// SwapRemove moves the last element into slot i and parks the element that
// was at i. Order is not preserved.
//
// It panics with *containers.ErrIndexNotFound if i is out of range.
func (v *Vec[T, PT]) SwapRemove(i int) {
	v.checkIndex(i)
	last := len(v.vec) - 1
	v.vec[i], v.vec[last] = v.vec[last], v.vec[i]
	v.Pop()
}

// Clear clears every live element and parks it.
func (v *Vec[T, PT]) Clear() {
	n := len(v.vec)
	if n == 0 {
		return
	}

	for i, p := range v.vec {
		p.Clear()
		v.dead = append(v.dead, p)
		v.vec[i] = nil
	}
	v.vec = v.vec[:0]

	v.park(n)
	v.logger.LogParked(n, len(v.dead))
}

// Clone returns a Vec holding copies of the live elements. The pool is not
// copied.
//
// dup produces an independent copy of one element. If dup is nil, the
// element's own Clone method is used (see Cloner); Clone panics with
// ErrNotClonable if T has none.
func (v *Vec[T, PT]) Clone(dup func(PT) T) *Vec[T, PT] {
	dup = resolveDup(dup)
	c := &Vec[T, PT]{
		vec:   make([]PT, len(v.vec)),
		hooks: v.hooks,
	}
	for i, p := range v.vec {
		c.vec[i] = clonePtr(p, dup)
	}
	return c
}

// Len returns the number of live elements.
func (v *Vec[T, PT]) Len() int { return len(v.vec) }

// Pooled returns the number of parked elements.
func (v *Vec[T, PT]) Pooled() int { return len(v.dead) }

// At returns the live element at position i.
//
// It panics with *containers.ErrIndexNotFound if i is out of range.
func (v *Vec[T, PT]) At(i int) PT {
	v.checkIndex(i)
	return v.vec[i]
}

// Last returns the most recently pushed live element.
func (v *Vec[T, PT]) Last() (PT, bool) {
	if len(v.vec) == 0 {
		return nil, false
	}
	return v.vec[len(v.vec)-1], true
}

// All iterates live elements with their positions, bottom of the stack first.
func (v *Vec[T, PT]) All() iter.Seq2[int, PT] {
	return func(yield func(int, PT) bool) {
		for i, p := range v.vec {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Values iterates live elements, bottom of the stack first.
func (v *Vec[T, PT]) Values() iter.Seq[PT] {
	return func(yield func(PT) bool) {
		for _, p := range v.vec {
			if !yield(p) {
				return
			}
		}
	}
}

// String formats the live elements like a slice.
func (v *Vec[T, PT]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range v.vec {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, *p)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (v *Vec[T, PT]) checkIndex(i int) {
	if i < 0 || i >= len(v.vec) {
		panic(&containers.ErrIndexNotFound{Index: i})
	}
}

func popDead[PT any](dead *[]PT) (PT, bool) {
	var none PT
	last := len(*dead) - 1
	if last < 0 {
		return none, false
	}
	p := (*dead)[last]
	(*dead)[last] = none
	*dead = (*dead)[:last]
	return p, true
}

// resolveDup falls back to the element's Clone method. A plain struct copy
// would share slices and maps with the source, and the next Clear on either
// side would wipe both.
func resolveDup[T any, PT Resettable[T]](dup func(PT) T) func(PT) T {
	if dup != nil {
		return dup
	}
	if _, ok := any(PT(nil)).(Cloner[T]); !ok {
		panic(ErrNotClonable)
	}
	return func(p PT) T { return any(p).(Cloner[T]).Clone() }
}

func clonePtr[T any, PT Resettable[T]](p PT, dup func(PT) T) PT {
	c := PT(new(T))
	*c = dup(p)
	return c
}

func zero[T any]() T {
	var z T
	return z
}

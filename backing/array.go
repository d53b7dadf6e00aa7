package backing

// Array is a minimal contiguous array.
//
// Positions are dense: valid positions are 0..Len()-1.
type Array[T any] interface {
	// Push appends v. Bounded implementations panic when full.
	Push(v T)

	// Pop removes and returns the last element.
	Pop() (T, bool)

	// SwapRemove removes the element at position i by moving the last element
	// into its slot, and returns the removed element. It panics if i is out
	// of range.
	SwapRemove(i int) T

	// Len returns the number of elements.
	Len() int

	// Get returns the element at position i.
	Get(i int) (T, bool)

	// GetPtr returns a pointer to the element at position i, or nil.
	GetPtr(i int) *T

	// GetUnchecked returns the element at position i without validating i
	// against Len. The caller must guarantee 0 <= i < Len().
	GetUnchecked(i int) T

	// GetUncheckedPtr is the pointer form of GetUnchecked.
	GetUncheckedPtr(i int) *T

	// Clear removes all elements and keeps the allocation.
	Clear()
}

// Bounded is implemented by arrays with a fixed maximum length.
type Bounded interface {
	// MaxLen returns the maximum number of elements the array can hold.
	MaxLen() int
}

// Compile time checks.
var (
	_ Array[int] = (*Slice[int])(nil)
	_ Array[int] = (*Fixed[int])(nil)
	_ Array[int] = (*Segmented[int])(nil)
	_ Bounded    = (*Fixed[int])(nil)
)

package sparse

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/containers/backing"
)

// ErrCorrupted is wrapped by the errors returned from CheckInvariants.
var ErrCorrupted = errors.New("sparse store corrupted")

// CheckInvariants verifies the internal bookkeeping of the store: every
// public index below the high-water mark is either live or free (never
// both, never neither), live positions and their owners agree, and the
// dense arrays have no gaps. It is O(n) and intended for tests and debugging.
func (v *VecOf[T, D, I]) CheckInvariants() error {
	if v.data.Len() != v.owners.Len() {
		return fmt.Errorf("%w: %d values but %d owners", ErrCorrupted, v.data.Len(), v.owners.Len())
	}
	owner := func(p int) int { return v.owners.GetUnchecked(p) }
	return checkPartition(v.data.Len(), owner, v.positions, v.free)
}

// CheckInvariants verifies the internal bookkeeping of the set. See
// VecOf.CheckInvariants.
func (s *SetOf[T, D, I]) CheckInvariants() error {
	owner := func(p int) int { return s.data.GetUncheckedPtr(p).Index }
	return checkPartition(s.data.Len(), owner, s.positions, s.free)
}

func checkPartition(live int, owner func(p int) int, positions, free backing.Array[int]) error {
	total := positions.Len()
	if live > total {
		return fmt.Errorf("%w: %d live values exceed %d indices", ErrCorrupted, live, total)
	}

	seen := bitset.New(uint(total))

	for p := range live {
		n := owner(p)
		if n < 0 || n >= total {
			return fmt.Errorf("%w: position %d owned by out-of-range index %d", ErrCorrupted, p, n)
		}
		if seen.Test(uint(n)) {
			return fmt.Errorf("%w: index %d owns several positions", ErrCorrupted, n)
		}
		seen.Set(uint(n))
		if got := positions.GetUnchecked(n); got != p {
			return fmt.Errorf("%w: index %d maps to position %d, owner of %d", ErrCorrupted, n, got, p)
		}
	}

	for i := range free.Len() {
		n := free.GetUnchecked(i)
		if n < 0 || n >= total {
			return fmt.Errorf("%w: free index %d out of range", ErrCorrupted, n)
		}
		if seen.Test(uint(n)) {
			return fmt.Errorf("%w: index %d is both live and free, or freed twice", ErrCorrupted, n)
		}
		seen.Set(uint(n))
		if got := positions.GetUnchecked(n); got != vacant {
			return fmt.Errorf("%w: free index %d maps to position %d", ErrCorrupted, n, got)
		}
	}

	if c := int(seen.Count()); c != total {
		return fmt.Errorf("%w: %d of %d indices are neither live nor free", ErrCorrupted, total-c, total)
	}
	return nil
}

// Package backing provides the contiguous-array abstraction the sparse stores
// are built on.
//
// Array is a small capability set: push, pop, swap-remove, length, checked and
// unchecked indexed access, and clear. Three implementations are provided:
//
//   - Slice: an owning growable array (amortized O(1) push)
//   - Fixed: a fixed-capacity array with a length cursor; pushing past the
//     capacity panics with *containers.ErrCapacity, TryPush returns it
//   - Segmented: a growable array of fixed-size segments; element addresses
//     stay valid while the array grows
//
// All implementations are single-owner and unsynchronized.
package backing

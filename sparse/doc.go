// Package sparse implements dense storage addressed through stable public
// indices.
//
// A store keeps live values packed in a dense backing array and maps each
// public index to a position in that array. Insert is O(1) and reuses the
// most recently freed index first (LIFO). Remove is O(1): the removed slot is
// filled by the last live value (swap-remove), so iteration order is dense
// order, not insertion order, once anything has been removed.
//
// Two shapes are provided:
//
//   - VecOf stores values in one dense array and their public indices in a
//     parallel array. Remove returns the removed value.
//   - SetOf stores (index, value) entries in one dense array. Remove reports
//     whether anything was removed.
//
// Both are generic over the backing.Array implementations used for their
// arrays. The aliases Vec, FixedVec, SegmentedVec, Set and FixedSet cover the
// common configurations.
//
// # Handles
//
// Public indices carry no generation: a removed index is handed out again by
// a later Insert, and a stale copy of it then refers to the new value.
//
// # Unchecked access
//
// GetUnchecked and GetUncheckedPtr skip the vacancy check. They are meant for
// loops that already established presence (e.g. via Keys). Calling them on a
// vacant index returns an unrelated value or panics.
package sparse

// Package containers provides index-stable, allocation-reusing container
// primitives for performance-sensitive Go code.
//
// The module is organized as a root package holding the shared ambient pieces
// (errors, logging, stats) and one subpackage per container family:
//
//   - backing: the contiguous-array abstraction the sparse stores are built on
//     (growable, fixed-capacity and segmented implementations)
//   - sparse: dense storage addressed through stable public indices, with O(1)
//     insert, O(1) swap-remove and LIFO reuse of freed indices
//   - recycling: containers that never drop removed elements; removed elements
//     are reset through the Clear contract and pooled for reuse
//   - stringmap: a small sorted-vector map keyed by strings
//
// # Quick Start
//
// Sparse storage:
//
//	store := sparse.New[Position]()
//	id := store.Insert(Position{X: 1, Y: 2})
//	pos, ok := store.Get(id)
//	store.Remove(id) // id becomes reusable
//
// Recycling containers:
//
//	lists := recycling.NewVec[recycling.Slice[int]]()
//	l := lists.PushDefault()
//	*l = append(*l, 1, 2, 3)
//	lists.Pop()          // l is cleared and parked, capacity retained
//	l = lists.PushDefault() // same backing array, len 0
//
// # Concurrency
//
// Containers are single-owner and unsynchronized. Callers that share a
// container across goroutines must synchronize externally or shard it. The
// only concurrent operation is recycling.Map.ParallelRange, a read-only
// fan-out.
//
// # Handles
//
// Public indices carry no generation. After an index is removed and reused, a
// stale copy of it silently refers to the new element.
package containers

package recycling

import (
	"context"
	"fmt"
	"iter"
	"maps"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/containers"
)

// Map is a hash map whose removed values are reset and parked instead of
// dropped. Keys are forgotten on removal; only values are pooled.
//
// The zero Map is empty and ready to use, without logging or stats. A Map is
// not safe for concurrent use, except for ParallelRange.
type Map[K comparable, V any, PV Resettable[V]] struct {
	m    map[K]PV
	dead []PV

	hooks
}

// NewMap creates an empty Map. The pointer type is inferred:
//
//	m := recycling.NewMap[string, recycling.Slice[int]]()
func NewMap[K comparable, V any, PV Resettable[V]](optFns ...Option) *Map[K, V, PV] {
	o := applyOptions(optFns)
	return &Map[K, V, PV]{
		m:     make(map[K]PV, o.capacity),
		hooks: newHooks(o),
	}
}

// Insert makes key live and returns its value.
//
//   - If key is present, its value is cleared, init is applied and the same
//     value is returned.
//   - Otherwise a parked value is reused with init applied.
//   - Otherwise ctor builds the value and init is not called.
//
// init may be nil.
func (m *Map[K, V, PV]) Insert(key K, ctor func() V, init func(PV)) PV {
	if p, ok := m.m[key]; ok {
		p.Clear()
		if init != nil {
			init(p)
		}
		return p
	}
	return m.insertVacant(key, ctor, init)
}

// InsertDefault is Insert with the zero V as constructor and no init.
//
// The zero value of V should be indistinguishable from a cleared one,
// otherwise keys served from the pool and keys served by construction behave
// differently.
func (m *Map[K, V, PV]) InsertDefault(key K) PV {
	return m.Insert(key, zero[V], nil)
}

func (m *Map[K, V, PV]) insertVacant(key K, ctor func() V, init func(PV)) PV {
	if m.m == nil {
		m.m = make(map[K]PV)
	}
	if p, ok := popDead(&m.dead); ok {
		m.recycle()
		if init != nil {
			init(p)
		}
		m.m[key] = p
		return p
	}

	m.construct(len(m.m))

	p := PV(new(V))
	*p = ctor()
	m.m[key] = p
	return p
}

// Remove clears the value at key and parks it. It reports whether key was
// present. The value is not returned: the Map keeps ownership of it.
func (m *Map[K, V, PV]) Remove(key K) bool {
	p, ok := m.m[key]
	if !ok {
		return false
	}
	delete(m.m, key)

	p.Clear()
	m.dead = append(m.dead, p)
	m.park(1)
	return true
}

// Get returns the live value at key.
func (m *Map[K, V, PV]) Get(key K) (PV, bool) {
	p, ok := m.m[key]
	return p, ok
}

// At returns the live value at key.
//
// It panics with *containers.ErrKeyNotFound if key is absent.
func (m *Map[K, V, PV]) At(key K) PV {
	p, ok := m.m[key]
	if !ok {
		panic(&containers.ErrKeyNotFound{Key: key})
	}
	return p
}

// Contains reports whether key is live.
func (m *Map[K, V, PV]) Contains(key K) bool {
	_, ok := m.m[key]
	return ok
}

// Len returns the number of live entries.
func (m *Map[K, V, PV]) Len() int { return len(m.m) }

// Pooled returns the number of parked values.
func (m *Map[K, V, PV]) Pooled() int { return len(m.dead) }

// Clear clears every live value, parks it and removes all keys.
func (m *Map[K, V, PV]) Clear() {
	n := len(m.m)
	if n == 0 {
		return
	}

	for _, p := range m.m {
		p.Clear()
		m.dead = append(m.dead, p)
	}
	clear(m.m)

	m.park(n)
	m.logger.LogParked(n, len(m.dead))
}

// Clone returns a Map holding copies of the live entries. The pool is not
// copied. dup behaves as in Vec.Clone.
func (m *Map[K, V, PV]) Clone(dup func(PV) V) *Map[K, V, PV] {
	dup = resolveDup(dup)
	c := &Map[K, V, PV]{
		m:     make(map[K]PV, len(m.m)),
		hooks: m.hooks,
	}
	for k, p := range m.m {
		c.m[k] = clonePtr(p, dup)
	}
	return c
}

// All iterates live entries in unspecified order.
func (m *Map[K, V, PV]) All() iter.Seq2[K, PV] { return maps.All(m.m) }

// Keys iterates live keys in unspecified order.
func (m *Map[K, V, PV]) Keys() iter.Seq[K] { return maps.Keys(m.m) }

// Values iterates live values in unspecified order.
func (m *Map[K, V, PV]) Values() iter.Seq[PV] { return maps.Values(m.m) }

// ParallelRange calls fn for every live entry from up to workers goroutines.
// If workers <= 0, runtime.GOMAXPROCS(0) is used.
//
// fn must not mutate the Map; values may be read concurrently with each
// other. There is no ordering guarantee. ParallelRange returns the first
// error returned by fn, or ctx.Err() if ctx is canceled before all entries
// are visited.
func (m *Map[K, V, PV]) ParallelRange(ctx context.Context, workers int, fn func(K, PV) error) error {
	if len(m.m) == 0 {
		return ctx.Err()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(m.m))

	entries := make([]pair[K, PV], 0, len(m.m))
	for k, p := range m.m {
		entries = append(entries, pair[K, PV]{k, p})
	}

	// A few batches per worker so a slow batch does not serialize the tail.
	batch := max(len(entries)/(workers*4), 1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(entries); start += batch {
		chunk := entries[start:min(start+batch, len(entries))]
		g.Go(func() error {
			for _, e := range chunk {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(e.key, e.val); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

type pair[K comparable, PV any] struct {
	key K
	val PV
}

// String formats the live entries like a map.
func (m *Map[K, V, PV]) String() string {
	view := make(map[K]V, len(m.m))
	for k, p := range m.m {
		view[k] = *p
	}
	return fmt.Sprint(view)
}

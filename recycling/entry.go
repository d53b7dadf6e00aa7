package recycling

// Entry is a view of a single key of a Map, for inspecting it or populating
// it from the pool without committing to construction up front.
//
// An Entry is only valid until the next mutation of its Map.
type Entry[K comparable, V any, PV Resettable[V]] struct {
	m   *Map[K, V, PV]
	key K
	val PV
}

// Entry returns the entry for key.
func (m *Map[K, V, PV]) Entry(key K) Entry[K, V, PV] {
	return Entry[K, V, PV]{m: m, key: key, val: m.m[key]}
}

// Key returns the entry's key.
func (e Entry[K, V, PV]) Key() K { return e.key }

// Occupied reports whether the key was live when the entry was taken.
func (e Entry[K, V, PV]) Occupied() bool { return e.val != nil }

// Get returns the live value, if occupied.
func (e Entry[K, V, PV]) Get() (PV, bool) { return e.val, e.val != nil }

// AndModify calls f on the value if the entry is occupied.
func (e Entry[K, V, PV]) AndModify(f func(PV)) Entry[K, V, PV] {
	if e.val != nil {
		f(e.val)
	}
	return e
}

// OrInsert returns the live value if occupied. Otherwise it fills the key
// with a parked value (init applied) or, if the pool is empty, with ctor().
func (e Entry[K, V, PV]) OrInsert(ctor func() V, init func(PV)) PV {
	if e.val != nil {
		return e.val
	}
	return e.m.insertVacant(e.key, ctor, init)
}

// OrInsertDefault is OrInsert with the zero V as constructor and no init.
func (e Entry[K, V, PV]) OrInsertDefault() PV {
	return e.OrInsert(zero[V], nil)
}

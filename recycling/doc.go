// Package recycling provides containers that never drop removed elements.
//
// Removing an element from a Vec or a Map calls its Clear method and parks it
// in a private pool. A later insertion takes a parked element before it
// constructs a new one, so nested containers keep their allocations across
// remove/insert cycles:
//
//	groups := recycling.NewMap[string, recycling.Slice[int]]()
//	g := groups.InsertDefault("a")
//	*g = append(*g, 1, 2, 3)
//	groups.Remove("a")        // g is cleared and parked
//	g = groups.InsertDefault("b") // same backing array, len 0
//
// Elements are held by pointer. A pointer returned by Push, Insert or At stays
// valid while the element is live; once removed it refers to a parked element
// that may be handed out again.
//
// Element types implement Clearer on their pointer type. Clear must leave the
// value observably equal to a freshly constructed one without releasing any
// memory it owns, and must be idempotent. Constructors passed to Push and
// Insert (and the zero value, for the *Default variants) should produce the
// same state that Clear does; this is not checked.
package recycling

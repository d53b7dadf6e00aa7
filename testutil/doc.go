// Package testutil provides testing utilities for the container packages.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG and generators for random
// insert/remove operation sequences.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	for _, op := range rng.Ops(1000, 0.6) {
//	    switch op.Kind {
//	    case testutil.OpInsert:
//	        // insert a value
//	    case testutil.OpRemove:
//	        // remove live[op.Pick % len(live)]
//	    }
//	}
//
// # Skewed Picks
//
//	i := rng.Zipf(len(live), 1.5) // a few hot positions get most picks
package testutil

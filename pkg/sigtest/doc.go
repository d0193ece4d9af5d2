// Package sigtest provides testing helpers for code built on sigil.
//
// The helpers wrap derive functions so tests can assert on how often and
// with which inputs a derived view recomputed.
//
// # Counting Recomputations
//
//	c := sigtest.NewCounter(func(n int) int { return n * 2 })
//	d := sigil.Derive(s, c.Fn())
//	d.Get()
//	d.Get()
//	if c.Calls() != 1 {
//	    t.Errorf("expected 1 computation, got %d", c.Calls())
//	}
//
// # Recording Inputs
//
//	r := sigtest.NewRecorder(func(n int) int { return n + 1 })
//	d := sigil.Derive(s, r.Fn())
//	// ... mutate and read ...
//	args := r.Args() // every value the function was computed against
package sigtest

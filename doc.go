// Package sigil provides generation-tracked signals and lazily recomputed
// derived views.
//
// A Signal is a mutable cell that advances a generation counter on every
// mutating access. A Derived is a memoized computation over one or more
// sources that recomputes only when a source's generation no longer
// matches the one recorded at its last computation. All coordination is
// synchronous and pull-based: there are no subscriptions and no background
// work.
//
// # Core Types
//
// Signal[T] is a generation-tracked value container:
//
//	count := sigil.NewSignal(1)
//	value := count.Get()   // Read (generation unchanged)
//	count.Set(5)           // Write (generation advances)
//	*count.GetMut() += 1   // Mutate in place (generation advances)
//
// Derived is a cached computation seeded eagerly and refreshed lazily:
//
//	double := sigil.Derive(count, func(n int) int { return n * 2 })
//	double.Get()  // Recomputes only if count changed since last Get
//
// Two sources combine into one with joint invalidation:
//
//	sum := sigil.Derive2(a, b, func(x, y int) int { return x + y })
//
// # Staleness and Generations
//
// A derived view is fresh exactly when its source reports the generation
// marker recorded at the view's last computation. Mutating a signal never
// triggers recomputation by itself; the next Get on a stale view does.
// Repeated Gets without an intervening mutation compare generations but
// recompute at most once.
//
// # Transitive Derivation
//
// A Derived stores its output in a generation-tracked cell, so it can be
// the source of another Derived. Staleness propagates only through reads:
// after a root mutation, a second-level view keeps returning its cached
// output until the first-level view has been read, because only that read
// advances the intermediate cell's generation. This read-driven laziness
// is intentional.
//
// # Thread Confinement
//
// The package takes no locks. A signal graph must be confined to one
// goroutine or serialized externally; concurrent unsynchronized access is
// a data race. This keeps reads and staleness checks at plain-field cost.
package sigil

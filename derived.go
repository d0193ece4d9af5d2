package sigil

import "fmt"

// Derived is a memoized computation over a Source. The output of the last
// computation is cached in an owned, generation-tracked cell together with
// the source marker observed at that computation; Get recomputes only when
// the source reports a different marker.
//
// The recomputation policy is eager-then-lazy: Derive runs the function
// once at construction, and afterwards only Get triggers recomputation.
// Mutations and timers never do.
//
// Because the cache is itself generation-tracked, a Derived is a Source
// and views chain. Staleness propagates on read, not on write: mutating
// the root signal leaves a second-level view untouched until the
// first-level view is actually read and refreshes its output cell.
type Derived[G comparable, V, O any] struct {
	source   Source[G, V]
	output   *Signal[O]
	baseline G
	fn       func(V) O
}

// Derive creates a memoized view of src through fn. fn must be pure with
// respect to the source value: it runs once per observed source change and
// its result is cached.
//
// The first computation happens here, so a view is never observable in an
// uncomputed state.
func Derive[G comparable, V, O any](src Source[G, V], fn func(V) O) *Derived[G, V, O] {
	return &Derived[G, V, O]{
		source:   src,
		output:   NewSignal(fn(src.Value())),
		baseline: src.Generation(),
		fn:       fn,
	}
}

// Get returns the view's output, recomputing it first if the source has
// changed since the last computation. Calling Get repeatedly without an
// intervening source mutation recomputes at most once.
func (d *Derived[G, V, O]) Get() O {
	if d.InputChanged() {
		// Set (not a bare assignment) so the output cell's generation
		// advances and downstream views observe the change.
		d.output.Set(d.fn(d.source.Value()))
		d.baseline = d.source.Generation()
	}
	return d.output.Get()
}

// InputChanged reports whether the source has changed since the last
// computation, without recomputing. For a combined source the comparison
// is member-wise: any changed member marks the view stale.
func (d *Derived[G, V, O]) InputChanged() bool {
	return d.source.Generation() != d.baseline
}

// Generation returns the output cell's counter. It advances each time Get
// recomputes, which is what lets another view derive from this one.
func (d *Derived[G, V, O]) Generation() Generation {
	return d.output.Generation()
}

// Value returns the cached output without checking staleness. This is the
// Source view of a Derived: a downstream view reads the cache as-is and
// relies on the cell's generation to learn when it changed. Use Get for a
// value that is guaranteed fresh.
func (d *Derived[G, V, O]) Value() O {
	return d.output.Get()
}

// String implements fmt.Stringer for debugging.
func (d *Derived[G, V, O]) String() string {
	return fmt.Sprintf("Derived(%v gen=%d stale=%t)", d.output.Get(), d.output.Generation(), d.InputChanged())
}

package sigil

// Source is the derivable capability: anything that can report a current
// generation marker and produce a value. Three kinds of source exist:
//
//   - *Signal[T] is a direct source. Its marker is the signal's own
//     counter and its value a copy of the signal's contents.
//   - *Derived[G, V, O] is a derived-output source. Its marker and value
//     come from the view's owned output cell, without forcing a recompute;
//     this is what makes staleness propagation read-driven.
//   - the composite built by Combine. Its marker is the pair of the
//     members' markers and its value the pair of their values.
//
// The marker type only needs equality. A derived view records the marker
// observed at its last computation and recomputes when the source reports
// a different one; it never interprets markers beyond comparing them.
//
// A source holds an ordinary pointer to the signal or view it reads and
// keeps that object alive. There is no registration and nothing to tear
// down.
type Source[G comparable, V any] interface {
	// Generation reports the source's current generation marker.
	Generation() G

	// Value produces the source's current value.
	Value() V
}

var (
	_ Source[Generation, int] = (*Signal[int])(nil)
	_ Source[Generation, int] = (*Derived[Generation, int, int])(nil)
)

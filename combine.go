package sigil

// Pair groups two values. It serves both as the value type and as the
// generation marker type of a combined source: a Pair of markers is
// comparable whenever its members are, and Go's struct equality is
// member-wise, which is exactly the joint staleness rule: stale if
// either member changed.
type Pair[A, B any] struct {
	A A
	B B
}

// pairSource combines two sources into one.
type pairSource[GA, GB comparable, VA, VB any] struct {
	a Source[GA, VA]
	b Source[GB, VB]
}

// Combine builds a composite source over two sources, letting a single
// derived view depend on both with correct joint invalidation. Wider
// fan-in nests pairs: Combine(Combine(a, b), c).
func Combine[GA, GB comparable, VA, VB any](a Source[GA, VA], b Source[GB, VB]) Source[Pair[GA, GB], Pair[VA, VB]] {
	return pairSource[GA, GB, VA, VB]{a: a, b: b}
}

func (p pairSource[GA, GB, VA, VB]) Generation() Pair[GA, GB] {
	return Pair[GA, GB]{A: p.a.Generation(), B: p.b.Generation()}
}

func (p pairSource[GA, GB, VA, VB]) Value() Pair[VA, VB] {
	return Pair[VA, VB]{A: p.a.Value(), B: p.b.Value()}
}

// Derive2 derives from two sources at once. It is sugar over Combine: the
// function receives both current values instead of a Pair.
func Derive2[GA, GB comparable, VA, VB, O any](a Source[GA, VA], b Source[GB, VB], fn func(VA, VB) O) *Derived[Pair[GA, GB], Pair[VA, VB], O] {
	return Derive(Combine(a, b), func(v Pair[VA, VB]) O {
		return fn(v.A, v.B)
	})
}

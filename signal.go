package sigil

import "fmt"

// Generation is a signal's modification counter. It advances on every
// mutating access and wraps on overflow rather than panicking. Staleness
// checks compare generations for equality, so wraparound only produces a
// false "fresh" answer if a source is mutated exactly 2^32 times between
// two reads of the same derived view.
type Generation uint32

// Signal is a generation-tracked mutable cell. Every operation that grants
// mutable access to the value advances the generation; derived views use
// the counter as a cheap staleness marker.
//
// A Signal is not safe for concurrent use. See the package documentation
// for the thread-confinement contract.
type Signal[T any] struct {
	value T
	gen   Generation
}

// NewSignal creates a signal holding the given initial value. The
// generation starts at 1 so the zero Generation never matches a live
// signal's counter.
func NewSignal[T any](initial T) *Signal[T] {
	return &Signal[T]{
		value: initial,
		gen:   1,
	}
}

// Get returns the current value. Reading does not advance the generation.
func (s *Signal[T]) Get() T {
	return s.value
}

// GetMut advances the generation and returns a pointer to the value.
//
// The bump is unconditional: the signal cannot observe whether the caller
// actually writes through the pointer, so it pessimistically assumes a
// mutation. The pointer is meant for immediate use; a caller that retains
// it and mutates later must call MarkUpdated at that point.
func (s *Signal[T]) GetMut() *T {
	s.MarkUpdated()
	return &s.value
}

// Set replaces the value and advances the generation.
func (s *Signal[T]) Set(value T) {
	s.MarkUpdated()
	s.value = value
}

// Update replaces the value with fn(current). The generation advances
// exactly once, through the same mutable path as GetMut.
func (s *Signal[T]) Update(fn func(T) T) {
	p := s.GetMut()
	*p = fn(*p)
}

// MarkUpdated advances the generation without touching the value. Useful
// after out-of-band mutation through a pointer obtained from GetMut.
func (s *Signal[T]) MarkUpdated() {
	s.gen++
}

// Generation returns the current generation counter.
func (s *Signal[T]) Generation() Generation {
	return s.gen
}

// Value returns the current value. It is an alias of Get that satisfies
// the Source capability, letting a signal act directly as the input of a
// derived view.
func (s *Signal[T]) Value() T {
	return s.value
}

// String implements fmt.Stringer for debugging.
func (s *Signal[T]) String() string {
	return fmt.Sprintf("Signal(%v gen=%d)", s.value, s.gen)
}

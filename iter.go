package coroutines

import "iter"

// All returns the generator's remaining values as a lazy, forward-only,
// single-pass sequence. The sequence is finite exactly when the generator
// is, and it is not restartable: it ends silently when the body completes,
// and ranging again over the same (or a new) sequence from an exhausted
// generator yields nothing. Reaching the end this way is the natural
// end-of-sequence signal; no ErrExhausted is surfaced.
//
// A body failure during iteration is not silent: it panics with the same
// *BodyError that Next would have returned.
//
// Breaking out of the range leaves the generator suspended at its current
// yield; it can still be driven with Next or abandoned with Cancel.
//
// The sequence is bound to the handle, not to the computation: if
// ownership is moved away after All returns, ranging over the sequence
// panics like any other operation on an emptied handle.
func (g *Generator[T]) All() iter.Seq[T] {
	g.state()
	return func(yield func(T) bool) {
		s := g.state()
		for !s.done {
			if err := s.resume(); err != nil {
				panic(err)
			}
			if s.done {
				return
			}
			if !yield(s.value) {
				return
			}
		}
	}
}

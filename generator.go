package coroutines

// Generator is the handle that drives a resumable computation one step at
// a time and exposes the value produced at each step. A generator's body
// yields exactly one value at every suspension point and terminates
// without a terminal value.
//
// A Generator is single-owner and not safe for concurrent use. Ownership
// is transferred with Move; a handle whose ownership has been moved away
// is empty, and every operation on it except Cancel panics.
type Generator[T any] struct {
	s *state[T]
}

// NewGenerator creates a generator from body. Construction does not start
// executing the body; the first Next (or iteration step) does. The yield
// argument passed to the body hands one value to the consumer and returns
// on the next step. The generator buffers at most that one pending value;
// each successful step overwrites it.
func NewGenerator[T any](body func(yield func(T))) *Generator[T] {
	s := newState(func(s *state[T], c *coroutine) {
		yield := func(v T) {
			if s.done {
				panic(ErrCanceled)
			}
			s.value = v
			s.pause(c)
		}
		body(yield)
	})
	return &Generator[T]{s: s}
}

func (g *Generator[T]) state() *state[T] {
	if g.s == nil {
		panic("coroutines: use of moved-from generator")
	}
	return g.s
}

// Next resumes the generator once and returns the freshly yielded value.
//
// Calling Next on an exhausted generator returns ErrExhausted, as does a
// resume during which the body runs off its end without yielding: a
// generator that yields n values answers Next successfully exactly n
// times. Exhaustion is terminal and stable.
//
// If the body fails during this resume, Next returns the captured failure
// as a *BodyError, exactly once; the generator is exhausted thereafter.
func (g *Generator[T]) Next() (T, error) {
	s, err := g.step()
	if err != nil {
		var zero T
		return zero, err
	}
	return s.value, nil
}

// TakeNext is Next, but moves the yielded value out instead of copying
// it, leaving the buffered copy zeroed.
func (g *Generator[T]) TakeNext() (T, error) {
	s, err := g.step()
	if err != nil {
		var zero T
		return zero, err
	}
	v := s.value
	var zero T
	s.value = zero
	return v, nil
}

// step performs one resume, mapping both pre-existing termination and a
// resume that terminates without a yield to ErrExhausted. On success the
// returned state holds the fresh value.
func (g *Generator[T]) step() (*state[T], error) {
	s := g.state()
	if s.done {
		return nil, ErrExhausted
	}
	if err := s.resume(); err != nil {
		return nil, err
	}
	if s.done {
		return nil, ErrExhausted
	}
	return s, nil
}

// Move transfers ownership of the computation to a fresh handle. The
// receiver becomes empty: any further operation on it other than Cancel
// panics. The returned handle continues exactly where the source left
// off.
func (g *Generator[T]) Move() *Generator[T] {
	s := g.state()
	g.s = nil
	return &Generator[T]{s: s}
}

// Cancel abandons the computation. If the body is suspended at a yield,
// it is unwound there so that its deferred cleanup runs. Cancel is
// idempotent and harmless on exhausted and on empty (moved-from) handles.
func (g *Generator[T]) Cancel() {
	if g.s == nil {
		return
	}
	g.s.stop()
}

package coroutines

// Void is the terminal type of routines that complete without producing a
// value.
type Void = struct{}

// Routine is the handle that drives a resumable computation to completion
// and exposes its terminal value once finished. A routine's body suspends
// zero or more times, yielding only control, never a value.
//
// A Routine is single-owner and not safe for concurrent use. Ownership is
// transferred with Move; a handle whose ownership has been moved away is
// empty, and every operation on it except Cancel panics.
type Routine[T any] struct {
	s *state[T]
}

// NewRoutine creates a routine from body. Construction does not start
// executing the body; the first Advance does. The suspend argument passed
// to the body yields control back to the driver and returns on the next
// Advance. Suspend is the only way a body may pause: the execution model
// is strictly synchronous and single-threaded, driven entirely by the
// owner's Advance calls.
func NewRoutine[T any](body func(suspend func()) T) *Routine[T] {
	s := newState(func(s *state[T], c *coroutine) {
		suspend := func() {
			if s.done {
				panic(ErrCanceled)
			}
			s.pause(c)
		}
		s.value = body(suspend)
	})
	return &Routine[T]{s: s}
}

// NewVoidRoutine creates a routine whose body terminates without a value.
func NewVoidRoutine(body func(suspend func())) *Routine[Void] {
	return NewRoutine(func(suspend func()) Void {
		body(suspend)
		return Void{}
	})
}

func (r *Routine[T]) state() *state[T] {
	if r.s == nil {
		panic("coroutines: use of moved-from routine")
	}
	return r.s
}

// Advance resumes the routine once. It reports true while the routine is
// still suspended with more steps expected, and false once it has
// terminated; advancing a terminated routine stays false.
//
// If the body fails during this resume, Advance returns the captured
// failure as a *BodyError and the routine is terminated. The failure is
// delivered exactly once: later Advance calls return (false, nil).
func (r *Routine[T]) Advance() (bool, error) {
	s := r.state()
	if s.done {
		return false, nil
	}
	if err := s.resume(); err != nil {
		return false, err
	}
	return !s.done, nil
}

// Result returns the terminal value. It may be called any number of times
// and always returns the same value. Calling Result before the routine
// has terminated, or after it has failed or been canceled mid-flight, is
// a contract violation and panics.
func (r *Routine[T]) Result() T {
	s := r.state()
	if !s.done || s.failed || s.canceled {
		panic("coroutines: routine has no result")
	}
	return s.value
}

// Take moves the terminal value out, leaving the stored copy zeroed. It
// has the same precondition as Result and is intended for one-time
// extraction of values that should not be duplicated.
func (r *Routine[T]) Take() T {
	s := r.state()
	if !s.done || s.failed || s.canceled {
		panic("coroutines: routine has no result")
	}
	v := s.value
	var zero T
	s.value = zero
	return v
}

// Move transfers ownership of the computation to a fresh handle. The
// receiver becomes empty: any further operation on it other than Cancel
// panics. The returned handle continues exactly where the source left
// off.
func (r *Routine[T]) Move() *Routine[T] {
	s := r.state()
	r.s = nil
	return &Routine[T]{s: s}
}

// Cancel abandons the computation. If the body is suspended, it is
// unwound at its current suspension point so that its deferred cleanup
// runs, and the routine terminates without a value. Cancel is idempotent
// and harmless on terminated and on empty (moved-from) handles.
func (r *Routine[T]) Cancel() {
	if r.s == nil {
		return
	}
	r.s.stop()
}

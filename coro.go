package coroutines

import (
	"errors"
	"unsafe"
)

var (
	// ErrCanceled is the cancellation sentinel. It is panicked through a
	// suspended body when its handle is canceled, so that the body's
	// deferred cleanup unwinds at the current suspension point, and it is
	// panicked by an escaped suspend/yield closure invoked after its
	// computation has already terminated.
	ErrCanceled = errors.New("coroutines: computation canceled")

	// ErrExhausted reports a Next or TakeNext call on a generator that has
	// already produced its last value. Exhaustion is terminal: once
	// returned, every subsequent call returns it again.
	ErrExhausted = errors.New("coroutines: generator exhausted")

	_ unsafe.Pointer
)

// coroutine represents a native Go coroutine instance. It's an opaque
// struct used by the runtime functions.
type coroutine struct{}

//go:linkname newcoro runtime.newcoro
func newcoro(func(*coroutine)) *coroutine

//go:linkname coroswitch runtime.coroswitch
func coroswitch(*coroutine)

// state is the execution record of one in-flight computation. Exactly one
// facade handle owns it at a time; the facades and the iteration adapter
// drive it strictly sequentially from the owning caller, never from a
// scheduler.
type state[T any] struct {
	c *coroutine

	// value holds the most recently yielded value (generator) or the
	// terminal value (routine). For routines it is meaningful only after a
	// clean termination; for generators only immediately after a resume
	// that suspended at a yield.
	value T

	// done flips to true when the body runs past its last statement,
	// panics, or is canceled. It never reverts.
	done bool

	// failed records that the body panicked. Unlike failure it is never
	// cleared, so the facades can refuse value access after a failure even
	// once the error itself has been delivered.
	failed bool

	// failure is the captured body panic, pending delivery. It is handed
	// to the driver exactly once, on the resume during which it occurred,
	// then cleared.
	failure error

	// stopping requests cancellation; the suspension point panics
	// ErrCanceled when resumed with it set.
	stopping bool

	// canceled records that the computation was abandoned before
	// terminating, so no terminal value is ever observable. It is not set
	// when cancel happens after a clean termination.
	canceled bool
}

// newState creates the execution record without running any of the body:
// execution is lazy and begins on the first resume.
func newState[T any](body func(s *state[T], c *coroutine)) *state[T] {
	s := &state[T]{}
	s.c = newcoro(func(c *coroutine) {
		defer s.settle()
		if !s.stopping {
			body(s, c)
		}
	})
	return s
}

// settle runs at coroutine exit, whether the body returned, panicked, or
// unwound from cancellation. A panic that is the cancellation sentinel is
// absorbed: abandonment is a clean outcome, not a failure.
func (s *state[T]) settle() {
	if s.done {
		return
	}
	if p := recover(); p != nil {
		err := newBodyError(p)
		if errors.Is(err, ErrCanceled) {
			err = nil
			s.canceled = true
		}
		s.failure = err
		s.failed = err != nil
	}
	s.done = true
}

// pause is the suspension point: it hands control back to the driver and
// re-enters here on the next resume. If the handle was canceled while
// suspended, it unwinds the body with the cancellation sentinel.
func (s *state[T]) pause(c *coroutine) {
	coroswitch(c)
	if s.stopping {
		panic(ErrCanceled)
	}
}

// resume runs the body from its last suspension point until the next one,
// or until termination. Resuming a terminated state is a no-op. A failure
// captured during this resume is returned here, exactly once.
func (s *state[T]) resume() error {
	if s.done {
		return nil
	}
	coroswitch(s.c)
	if err := s.failure; err != nil {
		s.failure = nil
		return err
	}
	return nil
}

// stop abandons the computation: the body is resumed one final time into a
// cancellation panic so that its deferred cleanup runs, exactly as if it
// had failed at its current suspension point. Idempotent, and a no-op on a
// terminated state. If the cleanup itself panics with something other than
// the sentinel, that panic surfaces here.
func (s *state[T]) stop() {
	if s.done {
		return
	}
	s.stopping = true
	s.canceled = true
	coroswitch(s.c)
	if err := s.failure; err != nil {
		s.failure = nil
		panic(err)
	}
}

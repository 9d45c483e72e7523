// Package coroutines provides resumable computations for Go: units of
// sequential logic that suspend at explicit points and are resumed later
// by their caller, without OS threads or an event loop. Two facades share
// one execution model: a Routine suspends zero or more times and produces
// a single terminal value (or none), while a Generator hands one value to
// its consumer at every suspension point and can be consumed as a lazy,
// finite, single-pass sequence.
//
// A handle is created with NewRoutine, NewVoidRoutine, or NewGenerator
// and owns its computation exclusively. Construction is lazy; the body
// starts on the first Advance or Next. Resumption is strictly synchronous
// and sequential: each resume runs the body from its last suspension
// point until the next one, or until termination, on the caller's own
// control flow.
//
// A panic inside a body is captured at the suspension boundary and handed
// back from the driving call as a *BodyError, exactly once, with the
// body's stack preserved. A generator driven past its last value reports
// ErrExhausted, while the sequence returned by All ends silently instead.
//
// Handles are single-owner: Move transfers the computation to a fresh
// handle and empties the source, and Cancel abandons a suspended
// computation, unwinding the body so its deferred cleanup runs.
package coroutines

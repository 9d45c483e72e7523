package coroutines

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// BodyError is a failure captured from a computation body. It wraps the
// recovered panic value together with the stack at the point of capture,
// and is returned by Advance, Next, and TakeNext on the resume during
// which the body failed. If the panic value was itself an error, BodyError
// unwraps to it, so errors.Is and errors.As see through the capture.
type BodyError struct {
	value any
	stack []byte
}

func newBodyError(v any) error {
	return &BodyError{
		value: v,
		stack: debug.Stack(),
	}
}

// Value returns the original panic value, unmodified.
func (e *BodyError) Value() any {
	return e.value
}

func (e *BodyError) Error() string {
	return fmt.Sprintf("%v", e.value)
}

// ErrorWithStack renders the failure together with the stack captured when
// the body panicked.
func (e *BodyError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", e.value, e.stack)
}

func (e *BodyError) Unwrap() error {
	err, ok := e.value.(error)
	if !ok {
		return nil
	}
	return err
}

// DebugString renders the failure and its entire unwrap chain, including
// the stacks of any nested BodyErrors (a computation that drives another
// computation propagates the inner capture intact).
func (e *BodyError) DebugString() string {
	var sb strings.Builder
	seen := make(map[error]bool)

	var unwrap func(error)
	unwrap = func(err error) {
		if err == nil || seen[err] {
			return
		}
		seen[err] = true

		if be, ok := err.(*BodyError); ok {
			sb.WriteString(be.ErrorWithStack())
		} else {
			sb.WriteString(err.Error())
		}

		if unwrapper, ok := err.(interface{ Unwrap() []error }); ok {
			for _, ue := range unwrapper.Unwrap() {
				unwrap(ue)
			}
		} else if ue := errors.Unwrap(err); ue != nil {
			unwrap(ue)
		}
	}

	unwrap(e)
	return sb.String()
}

package session

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition matches every *TransitionError.
var ErrIllegalTransition = errors.New("illegal transition")

// TransitionError reports an operation that the session's current state
// does not allow. The session is left unchanged.
type TransitionError struct {
	Op     string // "submit" or "advance"
	Index  int    // Question index at the time of the call
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s at question %d: %s", e.Op, e.Index+1, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

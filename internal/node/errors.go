package node

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConnection is returned for socket pairs that cannot be wired
	// or that have no existing relationship to undo.
	ErrInvalidConnection = errors.New("invalid connection")
	// ErrCycleDetected is returned when a propagation wave or a new wire would
	// loop back onto itself.
	ErrCycleDetected = errors.New("cycle detected")
	// ErrInvalidValue is returned when a value cannot be delivered to a socket.
	ErrInvalidValue = errors.New("invalid value")
)

// ConnectionError describes a refused connect or disconnect request.
type ConnectionError struct {
	From   string
	To     string
	Reason string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s: %s", e.Err, e.From, e.To, e.Reason)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError builds a ConnectionError for the pair. A nil err defaults
// to ErrInvalidConnection.
func NewConnectionError(out *Output, in *Input, err error, reason string) *ConnectionError {
	if err == nil {
		err = ErrInvalidConnection
	}
	return &ConnectionError{From: out.Address(), To: in.Address(), Reason: reason, Err: err}
}

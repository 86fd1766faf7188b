package router

import (
	"errors"
	"fmt"
)

var (
	// ErrUndeclaredScreen indicates a navigation request for a screen the
	// mounted graph does not declare. This is a programming error.
	ErrUndeclaredScreen = errors.New("screen not declared in graph")

	// ErrNilParams indicates a navigation request without a payload.
	ErrNilParams = errors.New("nil params")
)

// InvariantError is raised (as a panic value) when a caller breaks the
// navigation contract. It is never returned as a recoverable error.
type InvariantError struct {
	Op     string    // Operation that was requested ("navigate", "reset", "mount")
	Graph  GraphName // Graph that was mounted
	Screen Screen    // Requested screen
	Err    error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("router: %s %s in %s: %v", e.Op, e.Screen, e.Graph, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

// IsInvariantError checks if an error (or recovered panic value) is an invariant violation.
func IsInvariantError(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}

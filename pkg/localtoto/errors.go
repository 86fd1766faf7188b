package localtoto

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user quit the application from the menu button.
// It is a normal way to end Run, not a failure.
var ErrCancelled = errors.New("cancelled by user")

// InfrastructureError is a failure of the shell itself: SDL, fonts,
// rendering, input devices. Screen logic never produces one.
type InfrastructureError struct {
	Op  string // e.g. "init", "render", "hardware_buttons"
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("localtoto: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("localtoto: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates the user quit.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

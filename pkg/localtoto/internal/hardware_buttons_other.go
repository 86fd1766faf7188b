//go:build !linux

package internal

import (
	"context"
	"errors"
)

// ReadHardwareButtons needs evdev, which only exists on Linux.
func ReadHardwareButtons(ctx context.Context, path string, out chan<- Event) error {
	return errors.New("hardware buttons are only supported on linux")
}

package internal

import (
	"time"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
)

// DirectionalInput turns a held d-pad direction into repeated presses: one
// after delay, then one every interval until release.
type DirectionalInput struct {
	held           constants.VirtualButton
	since          time.Time
	repeated       bool
	repeatDelay    time.Duration
	repeatInterval time.Duration
	now            func() time.Time
}

// NewDirectionalInput uses 300ms before the first repeat and 60ms between repeats.
func NewDirectionalInput() *DirectionalInput {
	return NewDirectionalInputWithTiming(300*time.Millisecond, 60*time.Millisecond)
}

func NewDirectionalInputWithTiming(delay, interval time.Duration) *DirectionalInput {
	return &DirectionalInput{repeatDelay: delay, repeatInterval: interval, now: time.Now}
}

func isDirection(b constants.VirtualButton) bool {
	switch b {
	case constants.VirtualButtonUp, constants.VirtualButtonDown,
		constants.VirtualButtonLeft, constants.VirtualButtonRight:
		return true
	}
	return false
}

// SetHeld records a press or release. It returns false for non-directional buttons.
func (d *DirectionalInput) SetHeld(button constants.VirtualButton, held bool) bool {
	if !isDirection(button) {
		return false
	}
	switch {
	case held:
		d.held = button
		d.since = d.now()
		d.repeated = false
	case d.held == button:
		d.Reset()
	}
	return true
}

// Update returns the held direction when a repeat is due, otherwise
// VirtualButtonUnassigned. Call it once per frame.
func (d *DirectionalInput) Update() constants.VirtualButton {
	if d.held == constants.VirtualButtonUnassigned {
		return constants.VirtualButtonUnassigned
	}

	threshold := d.repeatInterval
	if !d.repeated {
		threshold = d.repeatDelay
	}
	if now := d.now(); now.Sub(d.since) >= threshold {
		d.since = now
		d.repeated = true
		return d.held
	}
	return constants.VirtualButtonUnassigned
}

// Reset forgets the held direction.
func (d *DirectionalInput) Reset() {
	d.held = constants.VirtualButtonUnassigned
	d.repeated = false
}

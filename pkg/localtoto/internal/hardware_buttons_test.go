//go:build linux

package internal

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
)

func TestTranslateKey(t *testing.T) {
	ev, ok := translateKey(evdev.EV_KEY, evdev.KEY_BACK, 1)
	assert.True(t, ok)
	assert.Equal(t, Event{Button: constants.VirtualButtonB, Pressed: true}, ev)

	ev, ok = translateKey(evdev.EV_KEY, evdev.KEY_DOWN, 2)
	assert.True(t, ok)
	assert.True(t, ev.Repeat)

	ev, ok = translateKey(evdev.EV_KEY, evdev.KEY_ENTER, 0)
	assert.True(t, ok)
	assert.False(t, ev.Pressed)

	_, ok = translateKey(evdev.EV_ABS, evdev.KEY_ENTER, 1)
	assert.False(t, ok)
	_, ok = translateKey(evdev.EV_KEY, evdev.KEY_A, 1)
	assert.False(t, ok)
}

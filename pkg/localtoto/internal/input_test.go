package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
)

func TestProcessMapsKeys(t *testing.T) {
	p := NewInputProcessor(DefaultKeyMap, DefaultControllerMap)

	ev, ok := p.Process(&sdl.KeyboardEvent{
		State:  sdl.PRESSED,
		Keysym: sdl.Keysym{Sym: sdl.K_RETURN},
	})
	assert.True(t, ok)
	assert.Equal(t, Event{Button: constants.VirtualButtonA, Pressed: true}, ev)

	ev, ok = p.Process(&sdl.KeyboardEvent{
		State:  sdl.RELEASED,
		Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE},
	})
	assert.True(t, ok)
	assert.Equal(t, Event{Button: constants.VirtualButtonB}, ev)
}

func TestProcessMapsControllerButtons(t *testing.T) {
	p := NewInputProcessor(DefaultKeyMap, DefaultControllerMap)

	ev, ok := p.Process(&sdl.ControllerButtonEvent{
		Button: uint8(sdl.CONTROLLER_BUTTON_DPAD_DOWN),
		State:  sdl.PRESSED,
	})
	assert.True(t, ok)
	assert.Equal(t, constants.VirtualButtonDown, ev.Button)
	assert.True(t, ev.Pressed)
}

func TestProcessIgnoresUnmapped(t *testing.T) {
	p := NewInputProcessor(DefaultKeyMap, DefaultControllerMap)

	_, ok := p.Process(&sdl.KeyboardEvent{State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_q}})
	assert.False(t, ok)
	_, ok = p.Process(&sdl.QuitEvent{})
	assert.False(t, ok)
}

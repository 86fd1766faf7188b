package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/config"
)

type WindowOptions struct {
	Title      string
	Width      int32 // used in dev mode; devices take the display size
	Height     int32
	Borderless bool
	Resizable  bool
	Fullscreen bool
	Hidden     bool
}

// WindowOptionsFrom copies the window section of the configuration.
func WindowOptionsFrom(c config.Window) WindowOptions {
	return WindowOptions{
		Title:      c.Title,
		Width:      c.Width,
		Height:     c.Height,
		Borderless: c.Borderless,
		Resizable:  c.Resizable,
		Fullscreen: c.Fullscreen,
	}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}

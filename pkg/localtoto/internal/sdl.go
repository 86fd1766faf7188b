package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var window *Window

// Init brings up SDL, the window, fonts and the input processor.
func Init(opts WindowOptions, fontPath string, fontSize int) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	w, err := initWindow(opts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := initFonts(fontPath, fontSize); err != nil {
		window.closeWindow()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	InitInputProcessor()
	sdl.StartTextInput()
	return nil
}

func SDLCleanup() {
	sdl.StopTextInput()
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
	}
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}

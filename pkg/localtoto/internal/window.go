package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

func initWindow(opts WindowOptions) (*Window, error) {
	width, height := opts.Width, opts.Height
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		x, y = 50, 50
	} else if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
		x, y = 0, 0
	} else {
		GetInternalLogger().Warn("display mode unavailable, using configured size", "error", err)
	}

	GetInternalLogger().Debug("creating window", "width", width, "height", height)

	window, err := sdl.CreateWindow(opts.Title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    opts.Title,
		hasVSync: vsync,
	}, nil
}

func (window *Window) closeWindow() {
	window.Renderer.Destroy()
	window.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size returns the logical drawing size.
func (window *Window) Size() (int32, int32) {
	w, h := window.Renderer.GetLogicalSize()
	if w == 0 || h == 0 {
		return window.Window.GetSize()
	}
	return w, h
}

// Clear fills the frame with c.
func (window *Window) Clear(c sdl.Color) {
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.Clear()
}

// FillRect draws a filled rectangle in c.
func (window *Window) FillRect(rect *sdl.Rect, c sdl.Color) {
	window.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	window.Renderer.FillRect(rect)
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (window *Window) Present() {
	window.Renderer.Present()
	if !window.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - window.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		window.lastPresentTime = sdl.GetTicks64()
	}
}

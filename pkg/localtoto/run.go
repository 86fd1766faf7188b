package localtoto

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
	"github.com/localtoto/localtoto/pkg/localtoto/internal"
	"github.com/localtoto/localtoto/pkg/localtoto/router"
	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

// RunOptions tune the event loop.
type RunOptions struct {
	HardwareDevice string // evdev node for front buttons, "" for none
}

// Run drives app until the window is closed, ctx is cancelled or the user
// quits from the menu, in which case it returns ErrCancelled. Init must have
// been called.
//
// A navigation invariant violation is logged and, in dev mode, re-panicked so
// the stack trace is visible; otherwise it ends Run with an error.
func Run(ctx context.Context, app *App, opts RunOptions) error {
	window := internal.GetWindow()
	if window == nil {
		return NewInfrastructureError("run", errors.New("window not initialized"))
	}

	r := newRenderer(window)
	defer r.destroy()

	ctx, cancel := context.WithCancel(ctx)

	hardware := make(chan internal.Event, 16)
	var wg sync.WaitGroup
	if opts.HardwareDevice != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := internal.ReadHardwareButtons(ctx, opts.HardwareDevice, hardware); err != nil {
				internal.GetInternalLogger().Error("hardware buttons stopped",
					"error", NewInfrastructureError("hardware_buttons", err))
			}
		}()
	}
	defer wg.Wait()
	defer cancel() // runs before Wait so the reader can exit

	l := &loop{app: app, renderer: r, directional: internal.NewDirectionalInput(), scheme: app.Scheme()}
	for {
		if ctx.Err() != nil {
			return nil
		}
		done, err := l.step(hardware)
		if err != nil || done {
			return err
		}
	}
}

type loop struct {
	app         *App
	renderer    *renderer
	directional *internal.DirectionalInput
	scheme      theme.Scheme
}

// step handles pending input and draws one frame.
func (l *loop) step(hardware <-chan internal.Event) (done bool, err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		recErr, ok := rec.(error)
		if !ok || !router.IsInvariantError(recErr) {
			panic(rec)
		}
		GetLogger().Error("navigation invariant violated", "error", recErr)
		if constants.IsDevMode() {
			panic(rec)
		}
		done, err = true, fmt.Errorf("navigation: %w", recErr)
	}()

	processor := internal.GetInputProcessor()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true, nil
		case *sdl.TextInputEvent:
			l.app.Type(e.GetText())
			continue
		case *sdl.KeyboardEvent:
			if e.Keysym.Sym == sdl.K_BACKSPACE && e.State == sdl.PRESSED && l.app.Editing() {
				l.app.Backspace()
				continue
			}
		}

		if ev, ok := processor.Process(event); ok {
			if err := l.handle(ev); err != nil {
				return true, err
			}
		}
	}

drain:
	for {
		select {
		case ev := <-hardware:
			if err := l.handle(ev); err != nil {
				return true, err
			}
		default:
			break drain
		}
	}

	if b := l.directional.Update(); b != constants.VirtualButtonUnassigned {
		if err := l.app.Press(b); err != nil {
			return true, err
		}
	}

	if s := l.app.Scheme(); s != l.scheme {
		SetScheme(s)
		l.scheme = s
	}

	u := l.app.Unit()
	if err := l.renderer.draw(u.Frame().ID, l.app.Frame()); err != nil {
		return true, NewInfrastructureError("render", err)
	}
	return false, nil
}

func (l *loop) handle(ev internal.Event) error {
	l.directional.SetHeld(ev.Button, ev.Pressed)
	if !ev.Pressed || ev.Repeat {
		return nil
	}
	return l.app.Press(ev.Button)
}

package localtoto

import (
	"log/slog"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
	"github.com/localtoto/localtoto/pkg/localtoto/root"
	"github.com/localtoto/localtoto/pkg/localtoto/router"
	"github.com/localtoto/localtoto/pkg/localtoto/screens"
	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

// Frame is one drawn state of the app.
type Frame struct {
	View    screens.View
	Focus   int  // focused item, -1 when nothing is focusable
	Editing bool // the focused input is being edited
	Draft   string
	Scheme  theme.Scheme
}

// App dispatches virtual buttons and text to the visible screen unit and
// keeps one unit per live stack frame. Units of frames popped or reset away
// are dropped, and a graph swap drops them all.
type App struct {
	sw     *root.Switch
	deps   screens.Deps
	logger *slog.Logger
	scheme theme.Scheme

	units map[string]*screens.Unit
	focus map[string]int
	edit  editor
}

// NewApp attaches to sw. deps.Nav is ignored; each unit gets the navigator
// of the graph it was mounted in.
func NewApp(sw *root.Switch, deps screens.Deps, scheme theme.Scheme) *App {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	a := &App{
		sw:     sw,
		deps:   deps,
		logger: deps.Logger,
		scheme: scheme,
	}
	a.attach(sw.Navigator())
	sw.OnMount(func(_ root.State, nav *router.Navigator) { a.attach(nav) })
	return a
}

func (a *App) attach(nav *router.Navigator) {
	a.units = make(map[string]*screens.Unit)
	a.focus = make(map[string]int)
	a.edit.stop()
	nav.OnChange(a.changed)
}

func (a *App) changed(c router.Change) {
	for _, f := range c.Dropped {
		delete(a.units, f.ID)
		delete(a.focus, f.ID)
	}
	a.edit.stop()
	a.logger.Debug("visible screen changed",
		"op", string(c.Op),
		"screen", c.Visible.Screen.String(),
		"depth", c.Depth,
		"frame_id", c.Visible.ID,
	)
}

// Unit returns the unit of the visible frame, mounting it on first use.
func (a *App) Unit() *screens.Unit {
	nav := a.sw.Navigator()
	frame := nav.Visible()
	if u, ok := a.units[frame.ID]; ok {
		return u
	}

	deps := a.deps
	deps.Nav = nav
	u := screens.Build(frame, deps)
	a.units[frame.ID] = u
	return u
}

// Scheme returns the active color scheme.
func (a *App) Scheme() theme.Scheme {
	return a.scheme
}

// Frame renders the visible unit and settles focus.
func (a *App) Frame() Frame {
	u := a.Unit()
	v := u.View()
	id := u.Frame().ID

	focus, known := a.focus[id]
	if !known || focus >= len(v.Items) || !focusable(v, focus) {
		focus = nextFocusable(v, -1, 1)
	}
	if v.Focus >= 0 && v.Focus < len(v.Items) && focusable(v, v.Focus) && v.Focus != focus {
		wasEditing := a.edit.active
		a.edit.stop()
		focus = v.Focus
		if wasEditing && v.Items[focus].Kind == screens.ItemInput {
			a.edit.begin(focus, v.Items[focus].Value)
		}
	}
	a.focus[id] = focus

	return Frame{
		View:    v,
		Focus:   focus,
		Editing: a.edit.active,
		Draft:   a.edit.text,
		Scheme:  a.scheme,
	}
}

// Press handles a virtual button. It returns ErrCancelled when the user asks
// to quit.
func (a *App) Press(button constants.VirtualButton) error {
	f := a.Frame()
	u := a.Unit()

	if f.View.Alert != nil {
		if button == constants.VirtualButtonA || button == constants.VirtualButtonB {
			u.DismissAlert()
		}
		return nil
	}

	if a.edit.active {
		a.pressEditing(u, button)
		return nil
	}

	switch button {
	case constants.VirtualButtonUp, constants.VirtualButtonLeft:
		a.moveFocus(f, -1)
	case constants.VirtualButtonDown, constants.VirtualButtonRight:
		a.moveFocus(f, 1)
	case constants.VirtualButtonA:
		if f.Focus < 0 {
			return nil
		}
		item := f.View.Items[f.Focus]
		if item.Kind == screens.ItemInput && !item.Disabled {
			a.edit.begin(f.Focus, item.Value)
			return nil
		}
		u.Activate(f.Focus)
	case constants.VirtualButtonB:
		if !u.Back() {
			a.logger.Debug("back ignored at root", "screen", f.View.Screen.String())
		}
	case constants.VirtualButtonStart:
		a.toggleScheme()
	case constants.VirtualButtonMenu:
		return ErrCancelled
	}
	return nil
}

func (a *App) pressEditing(u *screens.Unit, button constants.VirtualButton) {
	switch button {
	case constants.VirtualButtonUp:
		a.edit.cycle(1)
	case constants.VirtualButtonDown:
		a.edit.cycle(-1)
	case constants.VirtualButtonRight:
		a.edit.appendRune()
	case constants.VirtualButtonLeft:
		a.edit.backspace()
	case constants.VirtualButtonA:
		a.edit.stop()
		u.Edit(a.edit.index, a.edit.text)
	case constants.VirtualButtonB:
		a.edit.stop()
		u.Edit(a.edit.index, a.edit.original)
	}
}

// Type delivers keyboard text to the focused input, starting an edit if needed.
// Typed text is applied immediately so search results follow the keyboard.
func (a *App) Type(text string) {
	f := a.Frame()
	if f.View.Alert != nil || f.Focus < 0 {
		return
	}
	if !a.edit.active {
		item := f.View.Items[f.Focus]
		if item.Kind != screens.ItemInput || item.Disabled {
			return
		}
		a.edit.begin(f.Focus, item.Value)
	}
	a.edit.typed(text)
	a.Unit().Edit(a.edit.index, a.edit.text)
}

// Backspace deletes the last character of the field being edited.
func (a *App) Backspace() {
	if !a.edit.active {
		return
	}
	a.edit.backspace()
	a.Unit().Edit(a.edit.index, a.edit.text)
}

// Editing reports whether an input is being edited.
func (a *App) Editing() bool {
	return a.edit.active
}

func (a *App) moveFocus(f Frame, dir int) {
	next := nextFocusable(f.View, f.Focus, dir)
	if next < 0 {
		return
	}
	a.focus[a.Unit().Frame().ID] = next
}

func (a *App) toggleScheme() {
	if a.scheme == theme.Dark {
		a.scheme = theme.Light
	} else {
		a.scheme = theme.Dark
	}
	a.logger.Info("color scheme changed", "scheme", string(a.scheme))
}

func focusable(v screens.View, i int) bool {
	return i >= 0 && i < len(v.Items) && v.Items[i].Kind != screens.ItemInfo
}

// nextFocusable walks from i in dir, wrapping around. It returns -1 when no
// item can take focus.
func nextFocusable(v screens.View, i, dir int) int {
	n := len(v.Items)
	for step := 1; step <= n; step++ {
		j := ((i+dir*step)%n + n) % n
		if focusable(v, j) {
			return j
		}
	}
	return -1
}

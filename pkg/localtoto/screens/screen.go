// Package screens holds the screen units: one per navigable screen, each a
// small state machine over its params and local state that renders a View
// and asks the navigator or the session for transitions.
//
// Units never render themselves. The presentation layer calls View, draws
// it, and feeds input back through Activate and Edit using item indices.
package screens

import (
	"log/slog"

	"github.com/localtoto/localtoto/pkg/localtoto/catalog"
	"github.com/localtoto/localtoto/pkg/localtoto/locale"
	"github.com/localtoto/localtoto/pkg/localtoto/router"
)

// Navigator is the part of router.Navigator a unit may use.
type Navigator interface {
	Navigate(params router.Params)
	GoBack() bool
	CanGoBack() bool
	Reset(params router.Params)
}

// Authenticator is the part of the session a unit may use.
type Authenticator interface {
	Login()
	Logout()
}

// Deps are the collaborators handed to every unit.
type Deps struct {
	Nav     Navigator
	Session Authenticator
	Catalog *catalog.Catalog
	Text    *locale.Localizer
	Logger  *slog.Logger
}

// ItemKind tells the presentation layer how to draw and drive an item.
type ItemKind int

const (
	ItemButton ItemKind = iota // activated with confirm
	ItemInput                  // receives text through Edit
	ItemInfo                   // display only, never focusable
)

// Item is one row of a view.
type Item struct {
	Kind     ItemKind
	Label    string
	Detail   string
	Value    string // current text of an input
	Icon     string
	Disabled bool
	Selected bool
}

// Alert is a blocking message the user must dismiss.
type Alert struct {
	Title   string
	Message string
}

// View is everything needed to draw a screen.
type View struct {
	Screen router.Screen
	Title  string
	Lines  []string
	Items  []Item
	Focus  int // item the unit wants focused, -1 to keep the current focus
	Alert  *Alert
	Back   bool // back affordance enabled
}

type entry struct {
	item     Item
	activate func()
	edit     func(string)
}

type page struct {
	title   string
	lines   []string
	entries []entry
}

type content interface {
	page() page
}

// Context carries a unit's dependencies and the presentation requests it
// makes (alerts, focus moves).
type Context struct {
	Deps
	alert *Alert
	focus int
}

// NewContext wraps deps for one unit.
func NewContext(deps Deps) *Context {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Catalog == nil {
		deps.Catalog = catalog.Default()
	}
	if deps.Text == nil {
		deps.Text = locale.MustNew(deps.Logger)
	}
	return &Context{Deps: deps, focus: -1}
}

// ShowAlert raises a blocking alert.
func (c *Context) ShowAlert(title, message string) {
	c.alert = &Alert{Title: title, Message: message}
}

// Alert returns the pending alert, if any.
func (c *Context) Alert() *Alert {
	return c.alert
}

// RequestFocus asks the presentation layer to focus an item on the next draw.
func (c *Context) RequestFocus(index int) {
	c.focus = index
}

func (c *Context) t(id string) string {
	return c.Text.T(id)
}

func (c *Context) tf(id string, data map[string]any) string {
	return c.Text.Tf(id, data)
}

// Unit is a mounted screen.
type Unit struct {
	frame   router.Frame
	ctx     *Context
	content content
}

// Frame returns the frame the unit was mounted for.
func (u *Unit) Frame() router.Frame {
	return u.frame
}

// Content returns the screen-specific state machine (e.g. *OTPVerify).
func (u *Unit) Content() any {
	return u.content
}

// View renders the current state. A pending focus request is consumed.
func (u *Unit) View() View {
	p := u.content.page()

	items := make([]Item, len(p.entries))
	for i, e := range p.entries {
		items[i] = e.item
	}

	v := View{
		Screen: u.frame.Screen,
		Title:  p.title,
		Lines:  p.lines,
		Items:  items,
		Focus:  u.ctx.focus,
		Alert:  u.ctx.alert,
		Back:   u.ctx.Nav.CanGoBack(),
	}
	u.ctx.focus = -1
	return v
}

// Activate presses item index. Disabled items, info rows and out of range
// indices are ignored, as is any press while an alert is showing.
func (u *Unit) Activate(index int) {
	if u.ctx.alert != nil {
		return
	}
	e, ok := u.entryAt(index)
	if !ok || e.item.Disabled || e.activate == nil {
		return
	}
	e.activate()
}

// Edit replaces the text of input item index.
func (u *Unit) Edit(index int, text string) {
	if u.ctx.alert != nil {
		return
	}
	e, ok := u.entryAt(index)
	if !ok || e.item.Disabled || e.edit == nil {
		return
	}
	e.edit(text)
}

// Back performs the back affordance. It returns false at the root.
func (u *Unit) Back() bool {
	if u.ctx.alert != nil {
		u.DismissAlert()
		return true
	}
	return u.ctx.Nav.GoBack()
}

// DismissAlert closes the pending alert.
func (u *Unit) DismissAlert() {
	u.ctx.alert = nil
}

func (u *Unit) entryAt(index int) (entry, bool) {
	entries := u.content.page().entries
	if index < 0 || index >= len(entries) {
		return entry{}, false
	}
	return entries[index], true
}

func button(label string, activate func()) entry {
	return entry{item: Item{Kind: ItemButton, Label: label}, activate: activate}
}

func input(label, value string, edit func(string)) entry {
	return entry{item: Item{Kind: ItemInput, Label: label, Value: value}, edit: edit}
}

func info(label, detail string) entry {
	return entry{item: Item{Kind: ItemInfo, Label: label, Detail: detail}}
}

func (e entry) disabled(d bool) entry {
	e.item.Disabled = d
	return e
}

func (e entry) selected(s bool) entry {
	e.item.Selected = s
	return e
}

func (e entry) detail(d string) entry {
	e.item.Detail = d
	return e
}

func (e entry) icon(name string) entry {
	e.item.Icon = name
	return e
}

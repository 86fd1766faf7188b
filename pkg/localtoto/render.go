package localtoto

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
	"github.com/localtoto/localtoto/pkg/localtoto/internal"
	"github.com/localtoto/localtoto/pkg/localtoto/screens"
)

// renderer draws frames into the shell window.
type renderer struct {
	window   *internal.Window
	cache    *internal.TextureCache
	firstRow int
	screenID string
}

func newRenderer(w *internal.Window) *renderer {
	return &renderer{window: w, cache: internal.NewTextureCache()}
}

func (r *renderer) destroy() {
	r.cache.Destroy()
}

func (r *renderer) draw(frameID string, f Frame) error {
	p := internal.GetTheme()
	w, h := r.window.Size()
	l := newLayout(w, h)
	v := f.View

	if frameID != r.screenID {
		r.screenID = frameID
		r.firstRow = 0
	}

	r.window.Clear(p.Background)

	r.window.FillRect(&sdl.Rect{X: 0, Y: 0, W: w, H: l.header}, p.Header)
	titleX := l.margin
	if v.Back {
		if err := r.icon("arrow-back", l.margin, (l.header-constants.DefaultIconSize)/2, p.HeaderText); err != nil {
			return err
		}
		titleX += constants.DefaultIconSize + l.margin/2
	}
	if err := r.textMiddle(v.Title, internal.FontLarge, p.HeaderText, titleX, 0, l.header); err != nil {
		return err
	}

	y := l.header + constants.DefaultTitleSpacing
	for _, line := range v.Lines {
		if err := r.textMiddle(line, internal.FontMedium, p.TextMuted, l.margin, y, l.lineHeight); err != nil {
			return err
		}
		y += l.lineHeight
	}

	r.firstRow = l.firstRow(r.firstRow, f.Focus, len(v.Items), len(v.Lines))
	visible := l.visibleRows(len(v.Lines))
	y = l.listTop(len(v.Lines))
	for i := r.firstRow; i < len(v.Items) && i < r.firstRow+visible; i++ {
		if err := r.row(l, y, v.Items[i], i == f.Focus, f.Editing && i == f.Focus, f.Draft); err != nil {
			return err
		}
		y += l.rowHeight
	}

	if v.Alert != nil {
		if err := r.alert(l, v.Alert); err != nil {
			return err
		}
	}

	r.window.Present()
	return nil
}

func (r *renderer) row(l layout, y int32, item screens.Item, focused, editing bool, draft string) error {
	p := internal.GetTheme()
	rect := sdl.Rect{X: l.margin, Y: y + 4, W: l.width - 2*l.margin, H: l.rowHeight - 8}

	bg, fg := p.Surface, p.Text
	switch {
	case item.Kind == screens.ItemInfo:
		bg = p.Background
	case focused:
		bg, fg = p.Highlight, p.HighlightTxt
	}
	if item.Disabled {
		fg = p.TextMuted
	}
	r.window.FillRect(&rect, bg)
	if item.Selected {
		r.window.FillRect(&sdl.Rect{X: rect.X, Y: rect.Y, W: 6, H: rect.H}, p.Selected)
	}

	x := rect.X + l.margin/2
	if item.Icon != "" {
		err := r.icon(item.Icon, x, rect.Y+(rect.H-constants.DefaultIconSize)/2, fg)
		switch {
		case err == nil:
			x += constants.DefaultIconSize + l.margin/2
		case !errors.Is(err, internal.ErrNoIcon):
			return err
		}
	}

	label := item.Label
	if item.Kind == screens.ItemInput {
		value := item.Value
		if editing {
			value = draft + "_"
		}
		if value != "" {
			label += ": " + value
		}
	}
	if err := r.textMiddle(label, internal.FontMedium, fg, x, rect.Y, rect.H); err != nil {
		return err
	}

	if item.Detail != "" {
		t, err := r.cache.Text(r.window.Renderer, item.Detail, internal.FontSmall, fg)
		if err != nil {
			return err
		}
		r.window.Renderer.Copy(t.Texture, nil, &sdl.Rect{
			X: rect.X + rect.W - t.W - l.margin/2,
			Y: rect.Y + (rect.H-t.H)/2,
			W: t.W, H: t.H,
		})
	}
	return nil
}

func (r *renderer) alert(l layout, a *screens.Alert) error {
	p := internal.GetTheme()
	r.window.FillRect(&sdl.Rect{X: 0, Y: 0, W: l.width, H: l.height}, p.Scrim)

	box := sdl.Rect{X: l.margin * 2, W: l.width - l.margin*4, H: l.rowHeight * 3}
	box.Y = (l.height - box.H) / 2
	r.window.FillRect(&box, p.Background)
	r.window.FillRect(&sdl.Rect{X: box.X, Y: box.Y, W: box.W, H: 4}, p.Highlight)

	if err := r.textMiddle(a.Title, internal.FontLarge, p.Text, box.X+l.margin, box.Y, l.rowHeight); err != nil {
		return err
	}
	return r.textMiddle(a.Message, internal.FontMedium, p.Text, box.X+l.margin, box.Y+l.rowHeight, l.rowHeight)
}

// textMiddle draws text at x, vertically centered in a band of height h.
func (r *renderer) textMiddle(text string, size internal.FontSize, c sdl.Color, x, y, h int32) error {
	if text == "" {
		return nil
	}
	t, err := r.cache.Text(r.window.Renderer, text, size, c)
	if err != nil {
		return err
	}
	return r.window.Renderer.Copy(t.Texture, nil, &sdl.Rect{X: x, Y: y + (h-t.H)/2, W: t.W, H: t.H})
}

func (r *renderer) icon(name string, x, y int32, c sdl.Color) error {
	t, err := r.cache.Icon(r.window.Renderer, name, constants.DefaultIconSize, c)
	if err != nil {
		return err
	}
	return r.window.Renderer.Copy(t.Texture, nil, &sdl.Rect{X: x, Y: y, W: t.W, H: t.H})
}

package internal

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

// Palette is a theme resolved to SDL colors.
type Palette struct {
	Background   sdl.Color // screen background
	Header       sdl.Color // title bar
	HeaderText   sdl.Color
	Text         sdl.Color
	TextMuted    sdl.Color
	Surface      sdl.Color // unfocused rows
	Highlight    sdl.Color // focused row
	HighlightTxt sdl.Color
	Selected     sdl.Color // selection marker
	Border       sdl.Color
	Icon         sdl.Color
	Danger       sdl.Color
	Scrim        sdl.Color // behind alerts
	FontPath     string
}

var currentPalette Palette

// SetTheme resolves t and makes it the active palette.
func SetTheme(t theme.Theme, fontPath string) {
	currentPalette = PaletteFor(t, fontPath)
}

// GetTheme returns the active palette.
func GetTheme() Palette {
	return currentPalette
}

// PaletteFor maps theme tokens onto the roles the renderer draws.
func PaletteFor(t theme.Theme, fontPath string) Palette {
	tok := t.Tokens
	return Palette{
		Background:   HexToColor(tok.Background),
		Header:       HexToColor(t.Navigation.Primary),
		HeaderText:   HexToColor(theme.White),
		Text:         HexToColor(tok.Text),
		TextMuted:    HexToColor(tok.TextMuted),
		Surface:      HexToColor(tok.Surface),
		Highlight:    HexToColor(tok.Tint),
		HighlightTxt: HexToColor(tok.Background),
		Selected:     HexToColor(tok.Success),
		Border:       HexToColor(tok.Border),
		Icon:         HexToColor(tok.Icon),
		Danger:       HexToColor(tok.Danger),
		Scrim:        sdl.Color{R: 0, G: 0, B: 0, A: 160},
		FontPath:     fontPath,
	}
}

// HexToColor converts a 0xRRGGBB color to an opaque sdl.Color.
func HexToColor(c theme.Color) sdl.Color {
	r, g, b := c.RGB()
	return sdl.Color{R: r, G: g, B: b, A: 255}
}

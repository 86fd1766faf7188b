package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

func TestHexToColor(t *testing.T) {
	assert.Equal(t, sdl.Color{R: 0x22, G: 0xC5, B: 0x5E, A: 255}, HexToColor(theme.BrightGreen))
}

func TestPaletteFollowsScheme(t *testing.T) {
	light := PaletteFor(theme.For(theme.Light), "font.ttf")
	dark := PaletteFor(theme.For(theme.Dark), "font.ttf")

	assert.Equal(t, HexToColor(theme.Primary), light.Highlight)
	assert.Equal(t, HexToColor(theme.BrightGreen), dark.Highlight)
	assert.NotEqual(t, light.Background, dark.Background)
	assert.Equal(t, "font.ttf", dark.FontPath)

	SetTheme(theme.For(theme.Dark), "x.ttf")
	assert.Equal(t, dark.Highlight, GetTheme().Highlight)
}

package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSize picks one of the loaded fonts.
type FontSize int

const (
	FontLarge  FontSize = iota // titles
	FontMedium                 // rows and body text
	FontSmall                  // row details
)

var fonts = map[FontSize]*ttf.Font{}

// fontScale is the size of each font relative to the configured size.
var fontScale = map[FontSize]float64{
	FontLarge:  1.3,
	FontMedium: 1.0,
	FontSmall:  0.75,
}

func initFonts(path string, base int) error {
	for size, scale := range fontScale {
		f, err := ttf.OpenFont(path, int(float64(base)*scale))
		if err != nil {
			closeFonts()
			return fmt.Errorf("open font %s: %w", path, err)
		}
		fonts[size] = f
	}
	return nil
}

func Font(size FontSize) *ttf.Font {
	return fonts[size]
}

func closeFonts() {
	for size, f := range fonts {
		f.Close()
		delete(fonts, size)
	}
}

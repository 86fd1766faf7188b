// Package theme maps a light/dark scheme to the application's color tokens
// and navigation chrome colors.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScheme is returned when a scheme name is neither light nor dark.
var ErrUnknownScheme = errors.New("unknown color scheme")

// Scheme selects a token set.
type Scheme string

const (
	Light Scheme = "light"
	Dark  Scheme = "dark"
)

// ParseScheme accepts "light", "dark", and "system". The application has no
// way to query the platform, so "system" and the empty string resolve to light.
func ParseScheme(raw string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "system", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, raw)
	}
}

// Color is a 24-bit RGB value, written 0xRRGGBB.
type Color uint32

// Hex returns the color in #RRGGBB form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF)
}

// RGB splits the color into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Tokens is the color set every screen draws with.
type Tokens struct {
	Text            Color
	TextMuted       Color
	Background      Color
	Surface         Color
	SurfaceAlt      Color
	Tint            Color
	Icon            Color
	Border          Color
	Success         Color
	Warning         Color
	Danger          Color
	TabIconDefault  Color
	TabIconSelected Color
}

// TokenKeys lists the token names every set provides.
var TokenKeys = []string{
	"text", "textMuted", "background", "surface", "surfaceAlt", "tint", "icon",
	"border", "success", "warning", "danger", "tabIconDefault", "tabIconSelected",
}

// Get returns a token by its contract name.
func (t Tokens) Get(key string) (Color, bool) {
	switch key {
	case "text":
		return t.Text, true
	case "textMuted":
		return t.TextMuted, true
	case "background":
		return t.Background, true
	case "surface":
		return t.Surface, true
	case "surfaceAlt":
		return t.SurfaceAlt, true
	case "tint":
		return t.Tint, true
	case "icon":
		return t.Icon, true
	case "border":
		return t.Border, true
	case "success":
		return t.Success, true
	case "warning":
		return t.Warning, true
	case "danger":
		return t.Danger, true
	case "tabIconDefault":
		return t.TabIconDefault, true
	case "tabIconSelected":
		return t.TabIconSelected, true
	default:
		return 0, false
	}
}

// Navigation holds the colors of the navigation chrome (header bar, cards).
type Navigation struct {
	Dark         bool
	Primary      Color
	Background   Color
	Card         Color
	Text         Color
	Border       Color
	Notification Color
}

// Theme bundles the token set and chrome of one scheme.
type Theme struct {
	Scheme     Scheme
	Tokens     Tokens
	Navigation Navigation
}

// For returns the theme of a scheme. Unknown schemes fall back to light.
func For(scheme Scheme) Theme {
	if scheme == Dark {
		return Theme{Scheme: Dark, Tokens: darkTokens, Navigation: darkNavigation}
	}
	return Theme{Scheme: Light, Tokens: lightTokens, Navigation: lightNavigation}
}

// Colors returns the token set of a scheme.
func Colors(scheme Scheme) Tokens {
	return For(scheme).Tokens
}

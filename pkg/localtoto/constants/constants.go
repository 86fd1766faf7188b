// Package constants defines values shared by the shell, its configuration and
// the input layer.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at start-up.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	ColorSchemeEnvVar  = "COLOR_SCHEME"
	LogLevelEnvVar     = "LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton is an input the shell reacts to, independent of whether it
// came from a keyboard, a game controller or a hardware key.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA // confirm
	VirtualButtonB // back
	VirtualButtonStart
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Layout and timing.
const (
	DefaultInputDelay         = 20 * time.Millisecond
	DefaultTitleSpacing int32 = 5
	DefaultRowHeight    int32 = 64
	DefaultMargin       int32 = 24
	DefaultIconSize           = 32
)

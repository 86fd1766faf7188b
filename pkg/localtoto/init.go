// Package localtoto is the presentation shell of the LocalToto rider app. It
// mounts the session-driven navigation graphs, renders the visible screen
// unit with SDL and feeds keyboard, controller and hardware-button input back
// into it.
//
// The screen logic lives in the screens, router, root and session packages
// and has no SDL dependency; this package only draws and dispatches.
package localtoto

import (
	"log/slog"

	"github.com/localtoto/localtoto/pkg/localtoto/config"
	"github.com/localtoto/localtoto/pkg/localtoto/constants"
	"github.com/localtoto/localtoto/pkg/localtoto/internal"
	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

// Init configures logging and theming and opens the SDL window.
// Must be called before Run.
func Init(cfg config.Config) error {
	if cfg.Log.Path != "" {
		internal.SetLogPath(cfg.Log.Path)
	}
	internal.SetRawLogLevel(cfg.Log.Level)
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	internal.SetTheme(theme.For(cfg.Scheme()), cfg.UI.FontPath)

	if err := internal.Init(internal.WindowOptionsFrom(cfg.Window), cfg.UI.FontPath, cfg.UI.FontSize); err != nil {
		return NewInfrastructureError("init", err)
	}
	return nil
}

// Close releases all SDL resources and closes the log file.
func Close() {
	internal.SDLCleanup()
}

// SetLogPath sets the log file. Call before Init or GetLogger.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetScheme switches the active color scheme.
func SetScheme(scheme theme.Scheme) {
	internal.SetTheme(theme.For(scheme), internal.GetTheme().FontPath)
}

// Package config loads the application settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/localtoto/localtoto/pkg/localtoto/constants"
	"github.com/localtoto/localtoto/pkg/localtoto/theme"
)

// Config is the full settings tree.
type Config struct {
	UI     UI     `toml:"ui"`
	Window Window `toml:"window"`
	Log    Log    `toml:"log"`
	Input  Input  `toml:"input"`
}

type UI struct {
	ColorScheme string `toml:"color_scheme"` // light, dark or system
	Language    string `toml:"language" validate:"required"`
	FontPath    string `toml:"font_path" validate:"required"`
	FontSize    int    `toml:"font_size" validate:"gt=0"`
}

// Window sizes apply in dev mode only; on a device the window fills the display.
type Window struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width" validate:"gt=0"`
	Height     int32  `toml:"height" validate:"gt=0"`
	Borderless bool   `toml:"borderless"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

type Log struct {
	Path  string `toml:"path"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

type Input struct {
	HardwareDevice string `toml:"hardware_device"` // evdev node, "" disables the reader
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		UI: UI{
			ColorScheme: "system",
			Language:    "en",
			FontPath:    "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			FontSize:    28,
		},
		Window: Window{
			Title:     "LocalToto",
			Width:     1024,
			Height:    768,
			Resizable: true,
		},
		Log: Log{Level: "info"},
	}
}

var validate = validator.New()

// LoadEnvFile loads KEY=value pairs from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Scheme resolves the configured color scheme.
func (c Config) Scheme() theme.Scheme {
	s, _ := theme.ParseScheme(c.UI.ColorScheme)
	return s
}

// Validate rejects settings the shell cannot start with.
func (c Config) Validate() error {
	if _, err := theme.ParseScheme(c.UI.ColorScheme); err != nil {
		return fmt.Errorf("config: ui.color_scheme: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		var fields validator.ValidationErrors
		if errors.As(err, &fields) && len(fields) > 0 {
			f := fields[0]
			return fmt.Errorf("config: %s fails %q (got %v): %w", f.Namespace(), f.Tag(), f.Value(), err)
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(constants.ColorSchemeEnvVar); ok && v != "" {
		c.UI.ColorScheme = v
	}
	if v, ok := lookup(constants.LogLevelEnvVar); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup(constants.WindowWidthEnvVar); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", constants.WindowWidthEnvVar, err)
		}
		c.Window.Width = int32(n)
	}
	if v, ok := lookup(constants.WindowHeightEnvVar); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: %s: %w", constants.WindowHeightEnvVar, err)
		}
		c.Window.Height = int32(n)
	}
	if v, ok := lookup(constants.EnvironmentEnvVar); ok && v == constants.Development {
		c.Window.Borderless = false
		c.Window.Fullscreen = false
	}
	return nil
}

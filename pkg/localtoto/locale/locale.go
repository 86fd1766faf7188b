// Package locale resolves user-visible strings from the embedded message files.
package locale

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var messageFiles embed.FS

// Localizer looks up messages for a preferred language, falling back to English.
type Localizer struct {
	localizer *i18n.Localizer
	logger    *slog.Logger
}

// New loads every embedded message file and prepares a localizer for langs,
// most preferred first.
func New(logger *slog.Logger, langs ...string) (*Localizer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := messageFiles.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("locale: list messages: %w", err)
	}
	for _, entry := range entries {
		data, err := messageFiles.ReadFile(entry.Name())
		if err != nil {
			return nil, fmt.Errorf("locale: read %s: %w", entry.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("locale: parse %s: %w", entry.Name(), err)
		}
	}

	return &Localizer{
		localizer: i18n.NewLocalizer(bundle, langs...),
		logger:    logger,
	}, nil
}

// MustNew is New for program start-up, where the embedded files cannot be missing.
func MustNew(logger *slog.Logger, langs ...string) *Localizer {
	l, err := New(logger, langs...)
	if err != nil {
		panic(err)
	}
	return l
}

// T returns the message for id. A missing message renders as its id.
func (l *Localizer) T(id string) string {
	return l.Tf(id, nil)
}

// Tf returns the message for id with its template fields filled from data.
func (l *Localizer) Tf(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		l.logger.Warn("missing message", "id", id, "error", err)
		return id
	}
	return msg
}

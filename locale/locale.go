// Package locale translates the user facing names of altcal: the device and each calendar sensor. Calendar names
// that are part of a calendar's own data (month names, day signs, ...) are handled by calendar.Names instead.
package locale

import (
	"embed"
	"encoding/json/v2"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/log"
)

const (
	MessageDeviceName = "device.name"

	calendarMessagePrefix = "calendar."
	calendarMessageSuffix = ".name"
)

//go:embed locales/active.*.json
var localeFS embed.FS

var logger = log.ForComponent("locale")

type bundle struct {
	*i18n.Bundle
	supported []language.Tag
}

var loadBundle = sync.OnceValue(func() bundle {
	b := i18n.NewBundle(calendar.DefaultLanguage)
	b.RegisterUnmarshalFunc("json", func(data []byte, v any) error {
		return json.Unmarshal(data, v)
	})

	files, err := fs.Glob(localeFS, "locales/active.*.json")
	if err != nil {
		logger.With(log.Error(err)).Error("Failed to list embedded locales")
		return bundle{Bundle: b}
	}

	var supported []language.Tag
	for _, name := range files {
		mf, err := b.LoadMessageFileFS(localeFS, name)
		if err != nil {
			logger.With(slog.String("file", path.Base(name)), log.Error(err)).Error("Failed to load locale")
			continue
		}

		supported = append(supported, mf.Tag)
	}

	return bundle{Bundle: b, supported: supported}
})

// Supported returns the languages with an embedded translation.
func Supported() []language.Tag {
	return loadBundle().supported
}

// Parse parses a BCP 47 language tag. An invalid tag logs a warning and yields calendar.DefaultLanguage.
func Parse(s string) language.Tag {
	if strings.TrimSpace(s) == "" {
		return calendar.DefaultLanguage
	}

	tag, err := language.Parse(s)
	if err != nil {
		logger.With(slog.String("language", s), log.Error(err)).Warn("Invalid language, using default")
		return calendar.DefaultLanguage
	}

	return tag
}

// Localizer translates messages into a single language, falling back to English and then to the message ID.
type Localizer struct {
	tag language.Tag
	l   *i18n.Localizer
}

// New constructs a Localizer for tag.
func New(tag language.Tag) *Localizer {
	return &Localizer{tag: tag, l: i18n.NewLocalizer(loadBundle().Bundle, tag.String())}
}

// Language returns the language the Localizer was constructed for.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// Text translates the message id, executing its template with data.
func (l *Localizer) Text(id string, data map[string]any) string {
	msg, err := l.l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		logger.With(slog.String("id", id), slog.String("language", l.tag.String()), log.Error(err)).
			Debug("Missing translation")

		return id
	}

	return msg
}

// CalendarName translates the display name of a calendar sensor, falling back to the Descriptor's own name.
func (l *Localizer) CalendarName(d calendar.Descriptor) string {
	id := calendarMessagePrefix + d.ID + calendarMessageSuffix
	if name := l.Text(id, nil); name != id {
		return name
	}

	return d.Name
}

package entity

import (
	"log/slog"

	"github.com/nlowe/altcal"
	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/config"
	"github.com/nlowe/altcal/locale"
	"github.com/nlowe/altcal/log"
	"github.com/nlowe/altcal/mqtt"
)

const (
	Manufacturer = "altcal"
	Model        = "Alternative Calendars"
)

// NewDevice returns the Home Assistant device grouping every calendar sensor of an installation. The discovery id is
// the installation name alone so the retained discovery topic survives a change of language.
func NewDevice(installation string, l *locale.Localizer) *altcal.Device {
	return &altcal.Device{
		DiscoveryID:     installation,
		Name:            l.Text(locale.MessageDeviceName, nil),
		Manufacturer:    Manufacturer,
		Model:           Model,
		SoftwareVersion: altcal.Version,
		Identifiers:     []string{installation},
	}
}

// FromConfig builds an Entity for every calendar enabled by cfg, in registry order. It returns
// config.ErrNoCalendarsSelected when no known calendar is enabled.
func FromConfig(cfg *config.Config, r *calendar.Registry, l *locale.Localizer) ([]*Entity, error) {
	selected, err := cfg.Select(r)
	if err != nil {
		return nil, err
	}

	settings := Settings{
		Installation: cfg.Name,
		TopicPrefix:  cfg.TopicPrefix,
		QoS:          mqtt.QualityOfService(cfg.QoS),
		Localizer:    l,
	}

	entities := make([]*Entity, len(selected))
	for i, s := range selected {
		entities[i] = New(s.Descriptor, s.Options, settings)
	}

	log.ForComponent("entity").With(
		slog.Int("count", len(entities)),
		slog.String("language", l.Language().String()),
	).Info("Created calendar entities")

	return entities, nil
}

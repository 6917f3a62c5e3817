// Package entity turns calendar descriptors into Home Assistant sensors and keeps them up to date.
//
// An Entity is created in two phases. New resolves the calendar definition (its options, language and topics) once;
// Tick then converts an instant and publishes the result. Entities are owned by a Scheduler, which ticks them from a
// single goroutine.
package entity

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nlowe/altcal"
	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/hass"
	"github.com/nlowe/altcal/locale"
	"github.com/nlowe/altcal/log"
	"github.com/nlowe/altcal/mqtt"
	"github.com/nlowe/altcal/platform"
)

// MinExpireAfter is the shortest expire_after sent to Home Assistant, so that fast sensors survive a slow broker.
const MinExpireAfter = time.Minute

// Sensor is the Home Assistant platform used for every calendar: a string state with ordered json attributes.
type Sensor = platform.Sensor[string, *calendar.Fields]

// Settings are the installation-wide values shared by every Entity.
type Settings struct {
	// Installation prefixes every unique ID.
	Installation string

	// TopicPrefix prefixes every state, attribute and availability topic.
	TopicPrefix string

	// QoS is the quality of service used when publishing and advertised to Home Assistant.
	QoS mqtt.QualityOfService

	Localizer *locale.Localizer
}

// Entity is a single calendar sensor.
type Entity struct {
	descriptor calendar.Descriptor
	calendar   calendar.Calendar

	component *altcal.Component[*Sensor]

	next time.Time

	log *slog.Logger
}

// New constructs the calendar described by d with its options and the localizer's language, and the sensor component
// that publishes it. The calendar is immutable for the lifetime of the Entity.
func New(d calendar.Descriptor, opts calendar.Options, s Settings) *Entity {
	if s.Localizer == nil {
		s.Localizer = locale.New(calendar.DefaultLanguage)
	}

	uniqueID := UniqueID(s.Installation, d.ID)
	writeOpts := mqtt.WriteOptions{QoS: s.QoS}

	sensor := platform.NewSensor[string, *calendar.Fields](mqtt.StringMarshaler, ExpireAfter(d.Interval), writeOpts)

	return &Entity{
		descriptor: d,
		calendar:   d.New(opts, s.Localizer.Language()),

		component: &altcal.Component[*Sensor]{
			Platform:    sensor,
			TopicPrefix: mqtt.JoinTopic(s.TopicPrefix, d.ID),

			Name: s.Localizer.CalendarName(d),
			Icon: d.Icon,

			Availability: mqtt.NewValueWithOptions(
				platform.AvailabilityTopic,
				hass.AvailabilityMarshaler,
				mqtt.WriteOptions{QoS: s.QoS, Retain: true},
			),

			DefaultEntityID: "sensor." + uniqueID,
			UniqueID:        uniqueID,
			QoS:             s.QoS,
		},

		log: log.ForComponent("entity").With(log.Calendar(d.ID)),
	}
}

// UniqueID returns the Home Assistant unique ID of a calendar sensor for an installation.
func UniqueID(installation, calendarID string) string {
	return installation + "_" + calendarID
}

// ExpireAfter returns how long Home Assistant should keep a state published every interval: three missed updates, but
// never less than MinExpireAfter.
func ExpireAfter(interval time.Duration) time.Duration {
	return max(3*interval, MinExpireAfter)
}

// ID returns the calendar ID of the entity.
func (e *Entity) ID() string {
	return e.descriptor.ID
}

// UniqueID returns the Home Assistant unique ID of the entity.
func (e *Entity) UniqueID() string {
	return e.component.UniqueID
}

// Component returns the discovery component of the entity.
func (e *Entity) Component() *altcal.Component[*Sensor] {
	return e.component
}

// Due reports whether the entity should be ticked at now.
func (e *Entity) Due(now time.Time) bool {
	return !now.Before(e.next)
}

// Tick converts now and publishes the state and attributes. Conversion faults are logged and published as the error
// sentinel; the returned error only reports publishing failures. Attributes are written before the state so automations
// triggered by a state change see matching attributes.
func (e *Entity) Tick(ctx context.Context, w mqtt.Writer, now time.Time) error {
	e.schedule(now)

	result, err := calendar.Safe(e.calendar, now)
	if err != nil {
		e.log.With(log.Error(err), slog.Time("instant", now)).Error("Failed to convert instant")
	}

	return e.publish(ctx, w, result)
}

func (e *Entity) publish(ctx context.Context, w mqtt.Writer, result calendar.Result) error {
	sensor := e.component.Platform

	return errors.Join(
		mqtt.Error(sensor.Attributes.Write(ctx, w, e.component.TopicPrefix, result.Attributes)),
		mqtt.Error(sensor.State.Write(ctx, w, e.component.TopicPrefix, result.State)),
	)
}

// schedule sets the next tick to the next multiple of the interval after now, so hourly calendars update on the hour.
func (e *Entity) schedule(now time.Time) {
	interval := max(e.descriptor.Interval, time.Second)
	e.next = now.Truncate(interval).Add(interval)
}

// Republish writes the most recently published state and attributes again, or ticks the entity at now if it was never
// published.
func (e *Entity) Republish(ctx context.Context, w mqtt.Writer, now time.Time) error {
	sensor := e.component.Platform

	_, attrErr := sensor.Attributes.Republish(ctx, w, e.component.TopicPrefix)
	if errors.Is(attrErr, mqtt.ErrNeverWritten) {
		return e.Tick(ctx, w, now)
	}

	return errors.Join(attrErr, mqtt.Error(sensor.State.Republish(ctx, w, e.component.TopicPrefix)))
}

// SetAvailability publishes the availability of the entity.
func (e *Entity) SetAvailability(ctx context.Context, w mqtt.Writer, a hass.Availability) error {
	return mqtt.Error(e.component.Availability.Write(ctx, w, e.component.TopicPrefix, a))
}

package entity

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/nlowe/altcal"
	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/hass"
	"github.com/nlowe/altcal/log"
	"github.com/nlowe/altcal/mqtt"
)

// DefaultResolution is how often a Scheduler checks for entities that are due.
const DefaultResolution = time.Second

// Scheduler owns a set of entities and ticks the ones that are due from a single goroutine. Entities are ticked
// serially, in the order they were provided.
type Scheduler struct {
	// Clock provides the instants entities are converted at. Defaults to calendar.RealClock.
	Clock calendar.Clock

	// Resolution is the period of the ticker used to check for due entities. Defaults to DefaultResolution.
	Resolution time.Duration

	w               mqtt.Writer
	device          *altcal.Device
	discoveryPrefix string
	entities        []*Entity

	rediscover chan struct{}

	log *slog.Logger
}

// NewScheduler constructs a Scheduler publishing the provided entities as components of device.
func NewScheduler(w mqtt.Writer, device *altcal.Device, discoveryPrefix string, entities []*Entity) *Scheduler {
	return &Scheduler{
		Clock:      calendar.RealClock{},
		Resolution: DefaultResolution,

		w:               w,
		device:          device,
		discoveryPrefix: discoveryPrefix,
		entities:        entities,

		rediscover: make(chan struct{}, 1),

		log: log.ForComponent("scheduler").With(slog.Any("device", device)),
	}
}

// Components returns the discovery components of every entity keyed by unique ID.
func (s *Scheduler) Components() map[string]json.MarshalerTo {
	components := make(map[string]json.MarshalerTo, len(s.entities))
	for _, e := range s.entities {
		components[e.UniqueID()] = e.Component()
	}

	return components
}

// Announce writes the device discovery payload, marks every entity available and publishes their current state.
func (s *Scheduler) Announce(ctx context.Context) error {
	s.log.With(slog.Int("entities", len(s.entities))).Info("Sending discovery info")
	if err := s.device.Configure(ctx, s.w, s.discoveryPrefix, s.Components()); err != nil {
		return fmt.Errorf("announce: %w", err)
	}

	now := s.Clock.Now()

	var err error
	for _, e := range s.entities {
		err = errors.Join(
			err,
			e.SetAvailability(ctx, s.w, hass.Available),
			e.Republish(ctx, s.w, now),
		)
	}

	return err
}

// Rediscover asks the goroutine running the Scheduler to Announce again, for example after Home Assistant restarts. It
// never blocks; requests made while one is already pending are merged.
func (s *Scheduler) Rediscover() {
	select {
	case s.rediscover <- struct{}{}:
	default:
	}
}

// TickDue ticks every entity that is due at now. Publishing failures are logged and joined; they never stop the other
// entities from ticking.
func (s *Scheduler) TickDue(ctx context.Context, now time.Time) error {
	var err error
	for _, e := range s.entities {
		if !e.Due(now) {
			continue
		}

		if tickErr := e.Tick(ctx, s.w, now); tickErr != nil {
			e.log.With(log.Error(tickErr)).Error("Failed to publish calendar")
			err = errors.Join(err, tickErr)
		}
	}

	return err
}

// Withdraw marks every entity unavailable.
func (s *Scheduler) Withdraw(ctx context.Context) error {
	s.log.Info("Marking entities unavailable")

	var err error
	for _, e := range s.entities {
		err = errors.Join(err, e.SetAvailability(ctx, s.w, hass.Unavailable))
	}

	return err
}

// Run announces the entities, then ticks due entities every Resolution until ctx is cancelled, returning the cause.
// Rediscover requests are handled on the same goroutine, between ticks. Publishing failures are logged and never stop
// the loop.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.Announce(ctx); err != nil {
		s.log.With(log.Error(err)).Error("Failed to announce entities")
	}

	ticker := time.NewTicker(s.resolution())
	defer ticker.Stop()

	s.log.Info("Scheduler started")
	for {
		select {
		case <-ctx.Done():
			s.log.Info("Scheduler stopped")
			return context.Cause(ctx)
		case <-s.rediscover:
			if err := s.Announce(ctx); err != nil {
				s.log.With(log.Error(err)).Error("Failed to re-announce entities")
			}
		case <-ticker.C:
			// Failures are logged per entity by TickDue.
			_ = s.TickDue(ctx, s.Clock.Now())
		}
	}
}

func (s *Scheduler) resolution() time.Duration {
	if s.Resolution <= 0 {
		return DefaultResolution
	}

	return s.Resolution
}

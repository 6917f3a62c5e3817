package calendar

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/text/language"
)

var (
	// ErrDuplicateID is the error returned by Registry.Register when a Descriptor with the same ID already exists.
	ErrDuplicateID = errors.New("calendar: duplicate calendar id")
	// ErrInvalidDescriptor is the error returned by Registry.Register for descriptors without an ID or factory.
	ErrInvalidDescriptor = errors.New("calendar: descriptor requires an id and a factory")
)

// Calendar is implemented by every calendar converter. Convert must be referentially transparent: the same instant
// always produces the same Result. Each implementation documents the reference frame (local wall-clock, UTC or a
// fixed zone) it reads from t.
type Calendar interface {
	Convert(t time.Time) (Result, error)
}

// The CalendarFunc type is an adapter to allow the use of ordinary functions as a Calendar.
type CalendarFunc func(time.Time) (Result, error)

func (f CalendarFunc) Convert(t time.Time) (Result, error) {
	return f(t)
}

// Frame documents which wall-clock a Calendar reads from the instant it is given. It implements fmt.Stringer.
type Frame string

const (
	// FrameLocal calendars use the wall-clock fields of the instant as provided by the host (usually time.Local).
	FrameLocal Frame = "local"
	// FrameUTC calendars convert the instant to UTC first.
	FrameUTC Frame = "utc"
	// FrameFixed calendars convert the instant to a fixed zone of their own (e.g. Biel Mean Time).
	FrameFixed Frame = "fixed"
	// FrameConfigured calendars convert the instant to a zone selected through their Options.
	FrameConfigured Frame = "configured"
)

func (f Frame) String() string {
	return string(f)
}

// Factory constructs a Calendar from its DisplayOptions and the language used for name tables.
type Factory func(opts Options, lang language.Tag) Calendar

// Descriptor is the static description of a calendar sensor. It implements slog.LogValuer.
type Descriptor struct {
	// ID is the stable identifier of the calendar, used in unique IDs and topics.
	ID string

	// Name is the display name of the sensor.
	Name string

	// Icon is the Home Assistant icon for the sensor (e.g. "mdi:calendar").
	Icon string

	// Interval is how often the sensor should be recomputed.
	Interval time.Duration

	// Frame is the reference frame the calendar reads from the instant.
	Frame Frame

	// New constructs the calendar.
	New Factory
}

func (d Descriptor) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", d.ID),
		slog.String("name", d.Name),
		slog.Duration("interval", d.Interval),
		slog.String("frame", d.Frame.String()),
	)
}

// Registry is an ordered set of Descriptors keyed by ID.
type Registry struct {
	order []string
	byID  map[string]Descriptor
}

// NewRegistry constructs a Registry holding the provided descriptors. It returns an error if any descriptor is invalid
// or duplicated.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byID: map[string]Descriptor{}}

	var err error
	for _, d := range descriptors {
		err = errors.Join(err, r.Register(d))
	}

	return r, err
}

// Register adds d to the registry.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" || d.New == nil {
		return fmt.Errorf("%q: %w", d.ID, ErrInvalidDescriptor)
	}

	if _, ok := r.byID[d.ID]; ok {
		return fmt.Errorf("%q: %w", d.ID, ErrDuplicateID)
	}

	r.order = append(r.order, d.ID)
	r.byID[d.ID] = d
	return nil
}

// Lookup returns the Descriptor registered for id.
func (r *Registry) Lookup(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// IDs returns the registered calendar IDs in registration order.
func (r *Registry) IDs() []string {
	return slices.Clone(r.order)
}

// All returns the registered descriptors in registration order.
func (r *Registry) All() []Descriptor {
	result := make([]Descriptor, len(r.order))
	for i, id := range r.order {
		result[i] = r.byID[id]
	}

	return result
}

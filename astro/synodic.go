package astro

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/log"
)

// Phase returns the position of the planet in its synodic cycle, in degrees, d days after J2000. For planets outside
// Earth's orbit 0 is opposition and 180 conjunction. For planets inside it 0 is inferior conjunction and 180 superior
// conjunction.
func (p Planet) Phase(d float64) float64 {
	if p.Inferior() {
		return Normalize(p.Longitude(d) - Earth.Longitude(d))
	}

	return Normalize(Earth.Longitude(d) - p.Longitude(d))
}

// Events returns the phase angles of the four events of the synodic cycle, in cycle order.
func (p Planet) Events() [4]float64 {
	if p.Inferior() {
		elongation := math.Acos(p.SemiMajorAxis) * 180 / math.Pi
		return [4]float64{0, elongation, 180, 360 - elongation}
	}

	quadrature := math.Acos(1/p.SemiMajorAxis) * 180 / math.Pi
	return [4]float64{0, quadrature, 180, 360 - quadrature}
}

// DaysUntil returns the days until the cycle next reaches the event angle from phase. An event at the current phase is
// a full synodic period away.
func (p Planet) DaysUntil(phase, event float64) float64 {
	delta := event - phase
	if delta <= 0 {
		delta += 360
	}

	return delta / 360 * p.SynodicPeriod()
}

// Synodic tracks a planet through its synodic cycle as seen from Earth.
type Synodic struct {
	Planet Planet
	Index  int
	Lang   language.Tag
}

// NewSynodic constructs Synodic from its options. Unknown planets (and Earth) log a warning and fall back to Mars.
func NewSynodic(opts calendar.Options, lang language.Tag) Synodic {
	id := opts.String("planet", "mars")

	p, i, ok := LookupPlanet(id)
	if !ok || p.ID == Earth.ID {
		log.ForComponent("astro.synodic").With(slog.String("planet", id)).Warn("Unknown planet, using Mars")
		p, i, _ = LookupPlanet("mars")
	}

	return Synodic{Planet: p, Index: i, Lang: lang}
}

func (s Synodic) Convert(t time.Time) (calendar.Result, error) {
	d := DaysSinceJ2000(t)
	phase := s.Planet.Phase(d)

	names := SuperiorEvents
	if s.Planet.Inferior() {
		names = InferiorEvents
	}

	planet, err := PlanetNames.At(s.Lang, s.Index)
	if err != nil {
		return calendar.Result{}, err
	}

	next, nextDays := -1, math.Inf(1)
	upcoming := calendar.NewFields()
	for i, event := range s.Planet.Events() {
		name, err := names.At(s.Lang, i)
		if err != nil {
			return calendar.Result{}, err
		}

		days := s.Planet.DaysUntil(phase, event)
		upcoming.Set(name, int(math.Round(days)))

		if days < nextDays {
			next, nextDays = i, days
		}
	}

	nextName, err := names.At(s.Lang, next)
	if err != nil {
		return calendar.Result{}, err
	}

	return calendar.Result{
		State: fmt.Sprintf("%s: %s in %d d", planet, nextName, int(math.Round(nextDays))),
		Attributes: calendar.NewFields().
			Set("planet", planet).
			Set("phase_angle", math.Round(phase*10)/10).
			Set("synodic_period", math.Round(s.Planet.SynodicPeriod()*10)/10).
			Set("next_event", nextName).
			Set("days_until_next_event", int(math.Round(nextDays))).
			Set("next_event_date", t.UTC().Add(time.Duration(nextDays*float64(24*time.Hour))).Format(time.DateOnly)).
			Set("events", upcoming),
	}, nil
}

package astro

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
	"github.com/nlowe/altcal/log"
)

const (
	// MarsEpochJD is the Julian Date at which the Mars Sol Date was zero.
	MarsEpochJD = 2405522.0
	// SolSeconds is the length of a mean Mars solar day in SI seconds.
	SolSeconds = 88775.244
	// MarsYearSols is the length of a tropical Mars year in sols.
	MarsYearSols = 686.9725

	// LocationMTC selects Coordinated Mars Time instead of a landing site.
	LocationMTC = "mtc"
)

// SolDate returns the Mars Sol Date of the instant t.
func SolDate(t time.Time) float64 {
	return (jd.FromInstant(t) - MarsEpochJD) / (SolSeconds / 86400)
}

// SolarLongitude approximates the areocentric solar longitude Ls, in degrees, for a Mars Sol Date.
func SolarLongitude(msd float64) float64 {
	_, frac := math.Modf(msd / MarsYearSols)
	if frac < 0 {
		frac++
	}

	return frac * 360
}

// MarsClock is a time of sol.
type MarsClock struct {
	Hour, Minute, Second int
}

func (c MarsClock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// ClockAt returns the time of sol for a Mars Sol Date shifted east by offsetHours.
func ClockAt(msd float64, offsetHours float64) MarsClock {
	_, frac := math.Modf(msd + offsetHours/24)
	if frac < 0 {
		frac++
	}

	secs := min(int(frac*86400), 86399)
	return MarsClock{Hour: secs / 3600, Minute: secs / 60 % 60, Second: secs % 60}
}

// Site is a landing site on Mars. Longitude is planetocentric, positive east.
type Site struct {
	ID        string
	Name      string
	Longitude float64
}

// OffsetHours is the local mean solar time offset of the site from MTC.
func (s Site) OffsetHours() float64 {
	return s.Longitude / 15
}

// Sites are the landing sites available for local Mars time.
var Sites = []Site{
	{ID: "viking1", Name: "Viking 1", Longitude: -47.95},
	{ID: "viking2", Name: "Viking 2", Longitude: -134.26},
	{ID: "pathfinder", Name: "Mars Pathfinder", Longitude: -33.22},
	{ID: "spirit", Name: "Spirit", Longitude: 175.47},
	{ID: "opportunity", Name: "Opportunity", Longitude: -5.53},
	{ID: "phoenix", Name: "Phoenix", Longitude: -125.75},
	{ID: "curiosity", Name: "Curiosity", Longitude: 137.44},
	{ID: "insight", Name: "InSight", Longitude: 135.62},
	{ID: "perseverance", Name: "Perseverance", Longitude: 77.45},
	{ID: "zhurong", Name: "Zhurong", Longitude: 109.93},
}

// LookupSite finds a landing site by ID.
func LookupSite(id string) (Site, bool) {
	i := slices.IndexFunc(Sites, func(s Site) bool { return s.ID == id })
	if i < 0 {
		return Site{}, false
	}

	return Sites[i], true
}

// Seasons are the northern hemisphere seasons, indexed by Ls quadrant.
var Seasons = calendar.Names{
	"en": {"Spring", "Summer", "Autumn", "Winter"},
	"de": {"Frühling", "Sommer", "Herbst", "Winter"},
	"fr": {"Printemps", "Été", "Automne", "Hiver"},
	"es": {"Primavera", "Verano", "Otoño", "Invierno"},
}

// Mars shows the current time on Mars, either Coordinated Mars Time or local mean solar time at a landing site.
type Mars struct {
	Site *Site
	Lang language.Tag
}

// NewMars constructs Mars from its options. An unknown location logs a warning and falls back to MTC.
func NewMars(opts calendar.Options, lang language.Tag) Mars {
	id := opts.String("location", "curiosity")
	if id == LocationMTC {
		return Mars{Lang: lang}
	}

	site, ok := LookupSite(id)
	if !ok {
		log.ForComponent("astro.mars").With(slog.String("location", id)).Warn("Unknown landing site, using MTC")
		return Mars{Lang: lang}
	}

	return Mars{Site: &site, Lang: lang}
}

func (m Mars) Convert(t time.Time) (calendar.Result, error) {
	msd := SolDate(t)
	ls := SolarLongitude(msd)

	season, err := Seasons.At(m.Lang, int(ls/90))
	if err != nil {
		return calendar.Result{}, err
	}

	mtc := ClockAt(msd, 0)
	attrs := calendar.NewFields().
		Set("msd", strconv.FormatFloat(msd, 'f', 5, 64)).
		Set("mtc", mtc.String()).
		Set("ls", math.Round(ls*100)/100).
		Set("season", season)

	if m.Site == nil {
		attrs.Set("location", "MTC")
		return calendar.Result{State: mtc.String(), Attributes: attrs}, nil
	}

	local := ClockAt(msd, m.Site.OffsetHours())
	attrs.
		Set("location", m.Site.Name).
		Set("longitude", m.Site.Longitude).
		Set("local_time", local.String())

	return calendar.Result{State: local.String(), Attributes: attrs}, nil
}

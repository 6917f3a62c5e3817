package astro

import (
	"math"
	"slices"
	"time"

	"github.com/nlowe/altcal/jd"
)

// Planet holds the mean orbital elements used to place a planet on its orbit.
type Planet struct {
	ID    string
	Glyph string

	// L0 is the mean longitude at J2000, in degrees.
	L0 float64
	// Period is the sidereal orbital period, in days.
	Period float64
	// SemiMajorAxis is in astronomical units.
	SemiMajorAxis float64
}

// Planets in order from the Sun. Index i also indexes PlanetNames.
var Planets = []Planet{
	{ID: "mercury", Glyph: "☿", L0: 252.25084, Period: 87.9691, SemiMajorAxis: 0.387098},
	{ID: "venus", Glyph: "♀", L0: 181.97973, Period: 224.701, SemiMajorAxis: 0.723332},
	{ID: "earth", Glyph: "⊕", L0: 100.46435, Period: 365.256, SemiMajorAxis: 1},
	{ID: "mars", Glyph: "♂", L0: 355.45332, Period: 686.980, SemiMajorAxis: 1.523679},
	{ID: "jupiter", Glyph: "♃", L0: 34.40438, Period: 4332.59, SemiMajorAxis: 5.2026},
	{ID: "saturn", Glyph: "♄", L0: 49.94432, Period: 10759.22, SemiMajorAxis: 9.5549},
	{ID: "uranus", Glyph: "♅", L0: 313.23218, Period: 30688.5, SemiMajorAxis: 19.2184},
	{ID: "neptune", Glyph: "♆", L0: 304.88003, Period: 60182, SemiMajorAxis: 30.1104},
}

// Earth is the reference planet for synodic cycles.
var Earth = Planets[slices.IndexFunc(Planets, func(p Planet) bool { return p.ID == "earth" })]

// LookupPlanet finds a planet by ID, returning its index in Planets.
func LookupPlanet(id string) (Planet, int, bool) {
	i := slices.IndexFunc(Planets, func(p Planet) bool { return p.ID == id })
	if i < 0 {
		return Planet{}, -1, false
	}

	return Planets[i], i, true
}

// Inferior reports whether the planet orbits inside Earth's orbit.
func (p Planet) Inferior() bool {
	return p.SemiMajorAxis < Earth.SemiMajorAxis
}

// SynodicPeriod returns the time between two identical configurations of the planet and Earth, in days.
func (p Planet) SynodicPeriod() float64 {
	return 1 / math.Abs(1/p.Period-1/Earth.Period)
}

// DaysSinceJ2000 returns the days elapsed since J2000 for the instant t.
func DaysSinceJ2000(t time.Time) float64 {
	return jd.FromInstant(t) - jd.J2000
}

// Normalize reduces an angle in degrees to [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

// greatInequality returns the correction for the mutual perturbation of Jupiter and Saturn.
func greatInequality(id string, d float64) float64 {
	mj := 19.8950 + 0.0830853001*d
	ms := 316.9670 + 0.0334442282*d
	arg := 2*mj - 5*ms - 67.6

	switch id {
	case "jupiter":
		return -0.332 * sinDeg(arg)
	case "saturn":
		return 0.812 * sinDeg(arg)
	default:
		return 0
	}
}

// Longitude returns the mean heliocentric longitude of the planet in degrees, d days after J2000.
func (p Planet) Longitude(d float64) float64 {
	return Normalize(p.L0 + 360*d/p.Period + greatInequality(p.ID, d))
}

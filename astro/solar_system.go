package astro

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
)

// ZodiacSign returns the index of the sign a heliocentric longitude falls in.
func ZodiacSign(longitude float64) int {
	return int(Normalize(longitude)/30) % 12
}

// SolarSystem shows which sign of the zodiac each planet occupies, seen from the Sun.
type SolarSystem struct {
	// Symbols renders the state as planet and sign glyphs rather than names.
	Symbols bool
	Lang    language.Tag
}

// NewSolarSystem constructs SolarSystem from its options.
func NewSolarSystem(opts calendar.Options, lang language.Tag) SolarSystem {
	return SolarSystem{Symbols: opts.Bool("symbols", true), Lang: lang}
}

func (s SolarSystem) Convert(t time.Time) (calendar.Result, error) {
	d := DaysSinceJ2000(t)

	parts := make([]string, 0, len(Planets))
	attrs := calendar.NewFields()
	for i, p := range Planets {
		longitude := p.Longitude(d)
		sign := ZodiacSign(longitude)

		name, err := PlanetNames.At(s.Lang, i)
		if err != nil {
			return calendar.Result{}, err
		}

		signName, err := ZodiacNames.At(s.Lang, sign)
		if err != nil {
			return calendar.Result{}, err
		}

		glyph, err := ZodiacGlyphs.At(s.Lang, sign)
		if err != nil {
			return calendar.Result{}, err
		}

		if s.Symbols {
			parts = append(parts, p.Glyph+glyph)
		} else {
			parts = append(parts, name+" "+signName)
		}

		attrs.Set(p.ID, calendar.NewFields().
			Set("name", name).
			Set("longitude", math.Round(longitude*10)/10).
			Set("sign", signName).
			Set("glyph", glyph))
	}

	sep := ", "
	if s.Symbols {
		sep = " "
	}

	return calendar.Result{State: strings.Join(parts, sep), Attributes: attrs}, nil
}

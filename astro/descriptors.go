package astro

import (
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
)

// Descriptors returns the calendar.Descriptor for every calendar in this package.
func Descriptors() []calendar.Descriptor {
	return []calendar.Descriptor{
		{
			ID: "mars", Name: "Mars Time", Icon: "mdi:rocket",
			Interval: time.Second, Frame: calendar.FrameUTC,
			New: func(opts calendar.Options, lang language.Tag) calendar.Calendar { return NewMars(opts, lang) },
		},
		{
			ID: "darian", Name: "Darian Calendar", Icon: "mdi:calendar-star",
			Interval: time.Minute, Frame: calendar.FrameUTC,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Darian{} },
		},
		{
			ID: "synodic", Name: "Synodic Cycle", Icon: "mdi:orbit",
			Interval: time.Hour, Frame: calendar.FrameUTC,
			New: func(opts calendar.Options, lang language.Tag) calendar.Calendar { return NewSynodic(opts, lang) },
		},
		{
			ID: "solar_system", Name: "Solar System", Icon: "mdi:solar-system",
			Interval: time.Hour, Frame: calendar.FrameUTC,
			New: func(opts calendar.Options, lang language.Tag) calendar.Calendar { return NewSolarSystem(opts, lang) },
		},
	}
}

package timecode

import (
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
)

// Descriptors returns the calendar.Descriptor for every calendar in this package.
func Descriptors() []calendar.Descriptor {
	return []calendar.Descriptor{
		{
			ID: "decimal", Name: "Decimal Time", Icon: "mdi:clock-digital",
			Interval: time.Second, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewDecimal(opts) },
		},
		{
			ID: "hexadecimal", Name: "Hexadecimal Time", Icon: "mdi:hexadecimal",
			Interval: time.Second, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewHexadecimal(opts) },
		},
		{
			ID: "swatch", Name: "Swatch Internet Time", Icon: "mdi:web-clock",
			Interval: time.Second, Frame: calendar.FrameFixed,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewSwatch(opts) },
		},
		{
			ID: "stardate", Name: "Stardate", Icon: "mdi:star-four-points",
			Interval: time.Minute, Frame: calendar.FrameLocal,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Stardate{} },
		},
		{
			ID: "unix", Name: "Unix Time", Icon: "mdi:counter",
			Interval: time.Second, Frame: calendar.FrameUTC,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Unix{} },
		},
		{
			ID: "julian_date", Name: "Julian Date", Icon: "mdi:calendar-clock",
			Interval: time.Second, Frame: calendar.FrameUTC,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return JulianDate{} },
		},
		{
			ID: "nato", Name: "NATO Date-Time Group", Icon: "mdi:shield-star",
			Interval: time.Minute, Frame: calendar.FrameConfigured,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewNATO(opts) },
		},
		{
			ID: "timezone", Name: "World Clock", Icon: "mdi:earth",
			Interval: time.Second, Frame: calendar.FrameConfigured,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewTimezone(opts) },
		},
	}
}

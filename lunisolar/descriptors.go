package lunisolar

import (
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
)

// Descriptors returns the calendar.Descriptor for every calendar in this package.
func Descriptors() []calendar.Descriptor {
	return []calendar.Descriptor{
		{
			ID: "coligny", Name: "Coligny Calendar", Icon: "mdi:leaf",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Coligny{} },
		},
		{
			ID: "attic", Name: "Attic Calendar", Icon: "mdi:moon-waxing-crescent",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Attic{} },
		},
		{
			ID: "egyptian", Name: "Egyptian Calendar", Icon: "mdi:pyramid",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewEgyptian(opts) },
		},
		{
			ID: "roman", Name: "Roman Calendar", Icon: "mdi:pillar",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewRoman(opts) },
		},
	}
}

package mesoamerica

import (
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
)

// Descriptors returns the calendar.Descriptor for every calendar in this package.
func Descriptors() []calendar.Descriptor {
	return []calendar.Descriptor{
		{
			ID: "maya", Name: "Maya Calendar", Icon: "mdi:pyramid",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar { return NewMaya(opts) },
		},
		{
			ID: "aztec", Name: "Aztec Calendar", Icon: "mdi:sun-compass",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, lang language.Tag) calendar.Calendar { return NewAztec(opts, lang) },
		},
	}
}

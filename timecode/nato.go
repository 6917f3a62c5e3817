package timecode

import (
	"fmt"
	"strings"
	"time"

	"github.com/nlowe/altcal/calendar"
)

const (
	NATOZoneLocal = "local"
	NATOZoneUTC   = "utc"

	NATOFormatFull  = "full"
	NATOFormatShort = "short"
)

// ZoneLetter returns the military time zone letter for a UTC offset in seconds. Offsets that are not whole hours use
// the letter of the truncated hour and are reported as inexact. Offsets beyond twelve hours are clamped to M and Y.
// The letter J (local observer time) is never returned.
func ZoneLetter(offsetSeconds int) (letter string, exact bool) {
	hours := offsetSeconds / 3600
	exact = offsetSeconds%3600 == 0

	hours = max(-12, min(12, hours))

	switch {
	case hours == 0:
		return "Z", exact
	case hours > 0 && hours <= 9:
		return string(rune('A' + hours - 1)), exact
	case hours > 9:
		return string(rune('K' + hours - 10)), exact
	default:
		return string(rune('N' - hours - 1)), exact
	}
}

// NATO formats the instant as a military date-time group, e.g. "211430Z DEC 12".
type NATO struct {
	// UTC selects Zulu time instead of the local wall-clock.
	UTC bool

	// Short omits the month and year.
	Short bool
}

// NewNATO constructs NATO from its options.
func NewNATO(opts calendar.Options) NATO {
	return NATO{
		UTC:   opts.Enum("zone", NATOZoneLocal, NATOZoneLocal, NATOZoneUTC) == NATOZoneUTC,
		Short: opts.Enum("format", NATOFormatFull, NATOFormatFull, NATOFormatShort) == NATOFormatShort,
	}
}

func (n NATO) Convert(t time.Time) (calendar.Result, error) {
	if n.UTC {
		t = t.UTC()
	}

	_, offset := t.Zone()
	letter, exact := ZoneLetter(offset)

	suffix := letter
	if !exact {
		suffix += "*"
	}

	state := fmt.Sprintf("%02d%02d%02d%s", t.Day(), t.Hour(), t.Minute(), suffix)
	if !n.Short {
		state += fmt.Sprintf(" %s %02d", strings.ToUpper(t.Month().String()[:3]), t.Year()%100)
	}

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("zone_letter", letter).
			Set("utc_offset", offset/60).
			Set("exact_offset", exact),
	}, nil
}

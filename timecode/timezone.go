package timecode

import (
	"log/slog"
	"time"
	_ "time/tzdata" // zone database for hosts without /usr/share/zoneinfo

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/log"
)

const (
	TimezoneFormat24h = "24h"
	TimezoneFormat12h = "12h"
)

// Timezone is a world clock showing the current time in a configured IANA time zone.
type Timezone struct {
	Location *time.Location
	Layout   string
}

// NewTimezone constructs Timezone from its options. An unknown zone logs a warning and falls back to UTC.
func NewTimezone(opts calendar.Options) Timezone {
	name := opts.String("zone", "UTC")

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.ForComponent("timecode.timezone").With(
			slog.String("zone", name),
			log.Error(err),
		).Warn("Unknown time zone, using UTC")

		loc = time.UTC
	}

	layout := time.TimeOnly
	if opts.Enum("format", TimezoneFormat24h, TimezoneFormat24h, TimezoneFormat12h) == TimezoneFormat12h {
		layout = "3:04:05 PM"
	}

	return Timezone{Location: loc, Layout: layout}
}

func (z Timezone) Convert(t time.Time) (calendar.Result, error) {
	local := t.In(z.Location)
	abbrev, offset := local.Zone()

	return calendar.Result{
		State: local.Format(z.Layout),
		Attributes: calendar.NewFields().
			Set("zone", z.Location.String()).
			Set("abbreviation", abbrev).
			Set("utc_offset", local.Format("-07:00")).
			Set("offset_minutes", offset/60).
			Set("date", local.Format(time.DateOnly)).
			Set("dst", local.IsDST()),
	}, nil
}

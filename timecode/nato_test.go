package timecode

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/altcal/calendar"
)

func TestZoneLetter(t *testing.T) {
	for _, tt := range []struct {
		hours float64
		want  string
		exact bool
	}{
		{hours: 0, want: "Z", exact: true},
		{hours: 1, want: "A", exact: true},
		{hours: 9, want: "I", exact: true},
		{hours: 10, want: "K", exact: true},
		{hours: 12, want: "M", exact: true},
		{hours: 14, want: "M", exact: true},
		{hours: -1, want: "N", exact: true},
		{hours: -5, want: "R", exact: true},
		{hours: -12, want: "Y", exact: true},
		{hours: 5.5, want: "E", exact: false},
		{hours: -9.5, want: "V", exact: false},
	} {
		t.Run(strconv.FormatFloat(tt.hours, 'f', 1, 64), func(t *testing.T) {
			letter, exact := ZoneLetter(int(tt.hours * 3600))

			assert.Equal(t, tt.want, letter)
			assert.Equal(t, tt.exact, exact)
			assert.NotEqual(t, "J", letter)
		})
	}
}

func TestNATO(t *testing.T) {
	instant := time.Date(2012, time.December, 21, 14, 30, 0, 0, time.UTC)

	for _, tt := range []struct {
		name string
		t    time.Time
		opts calendar.Options
		want string
	}{
		{name: "zulu", t: instant, want: "211430Z DEC 12"},
		{name: "short", t: instant, opts: calendar.Options{"format": "short"}, want: "211430Z"},
		{name: "local eastern", t: instant.In(time.FixedZone("EST", -5*60*60)), want: "210930R DEC 12"},
		{name: "forced utc", t: instant.In(time.FixedZone("EST", -5*60*60)), opts: calendar.Options{"zone": "utc"}, want: "211430Z DEC 12"},
		{name: "fractional offset", t: instant.In(time.FixedZone("IST", 19800)), want: "212000E* DEC 12"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewNATO(tt.opts).Convert(tt.t)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.State)
		})
	}
}

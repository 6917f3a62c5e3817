package timecode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStardate(t *testing.T) {
	for _, tt := range []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "new year", t: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), want: "-298997.26"},
		{name: "new year noon", t: time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC), want: "-298992.26"},
		{name: "maya end of cycle", t: time.Date(2012, time.December, 21, 14, 30, 0, 0, time.UTC), want: "-310019.28"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Stardate{}.Convert(tt.t)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.State)

			entry, _ := res.Attributes.Get("log_entry")
			assert.Equal(t, "Captain's log, stardate "+tt.want, entry)
		})
	}
}

func TestStardateMonotonic(t *testing.T) {
	t.Run("Within A Day", func(t *testing.T) {
		prev := ToStardate(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
		for m := 1; m < 1440; m++ {
			next := ToStardate(time.Date(2024, time.June, 1, 0, m, 0, 0, time.UTC))
			require.Greater(t, next, prev)
			prev = next
		}
	})

	t.Run("Day To Day", func(t *testing.T) {
		start := time.Date(2023, time.December, 1, 9, 15, 0, 0, time.UTC)
		prev := ToStardate(start)
		for d := 1; d < 90; d++ {
			next := ToStardate(start.AddDate(0, 0, d))
			require.Greater(t, next, prev, "day %d", d)
			prev = next
		}
	})
}

func TestQuoteFor(t *testing.T) {
	for jdn := 2460000; jdn < 2460100; jdn++ {
		q := QuoteFor(jdn)

		require.Contains(t, Quotes, q)
		require.Equal(t, q, QuoteFor(jdn))
	}
}

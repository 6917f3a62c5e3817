package jd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	for _, tt := range []struct {
		name             string
		year, month, day int
		want             int
	}{
		{name: "Unix Epoch", year: 1970, month: 1, day: 1, want: 2440588},
		{name: "J2000", year: 2000, month: 1, day: 1, want: 2451545},
		{name: "MJD Epoch", year: 1858, month: 11, day: 17, want: 2400001},
		{name: "2006-01-02", year: 2006, month: 1, day: 2, want: 2453738},
		{name: "Leap Day", year: 2024, month: 2, day: 29, want: 2460370},
		{name: "Maya Baktun 13", year: 2012, month: 12, day: 21, want: 2456283},
		{name: "Gregorian Reform", year: 1582, month: 10, day: 15, want: 2299161},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Number(tt.year, tt.month, tt.day))

			y, m, d := Civil(tt.want)
			assert.Equal(t, tt.year, y)
			assert.Equal(t, tt.month, m)
			assert.Equal(t, tt.day, d)
		})
	}
}

func TestJulianNumber(t *testing.T) {
	// The Gregorian reform dropped ten days: 4 October 1582 (Julian) was followed by 15 October 1582 (Gregorian).
	require.Equal(t, Number(1582, 10, 15)-1, JulianNumber(1582, 10, 4))
	require.Equal(t, Number(1521, 8, 23), JulianNumber(1521, 8, 13))
}

func TestCivilRoundTrip(t *testing.T) {
	for jdn := Number(1600, 1, 1); jdn < Number(2400, 1, 1); jdn += 17 {
		y, m, d := Civil(jdn)
		require.Equal(t, jdn, Number(y, m, d), "jdn %d", jdn)
	}
}

func TestFromCivil(t *testing.T) {
	t.Run("Noon starts the Julian Day", func(t *testing.T) {
		assert.Equal(t, J2000, FromCivil(2000, 1, 1, 12, 0, 0, 0))
	})

	t.Run("Midnight is half a day earlier", func(t *testing.T) {
		assert.Equal(t, 2451544.5, FromCivil(2000, 1, 1, 0, 0, 0, 0))
	})

	t.Run("Unix Epoch", func(t *testing.T) {
		assert.Equal(t, UnixEpoch, FromInstant(time.Unix(0, 0)))
	})

	t.Run("Instant ignores location", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		ts := time.Date(2024, 6, 1, 9, 0, 0, 0, tokyo)

		assert.Equal(t, FromInstant(ts), FromTime(ts.UTC()))
		assert.InDelta(t, FromInstant(ts)+9.0/24, FromTime(ts), 1e-9)
	})
}

func TestToCivilRoundTrip(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

	for ts := start; ts.Before(end); ts = ts.Add(97*time.Hour + 13*time.Minute + 7*time.Second) {
		got := ToTime(FromTime(ts))

		require.WithinDuration(t, ts, got, time.Second, "round trip of %s", ts)
	}
}

func TestToCivilCarry(t *testing.T) {
	// 0.4999999 s before midnight rounds up into the next day
	y, m, d, h, mi, s := ToCivil(FromCivil(2023, 12, 31, 23, 59, 59, 999_000_000))

	assert.Equal(t, []int{2024, 1, 1, 0, 0, 0}, []int{y, m, d, h, mi, s})
}

func TestMJD(t *testing.T) {
	assert.Equal(t, 0.0, MJD(FromCivil(1858, 11, 17, 0, 0, 0, 0)))
	assert.Equal(t, 51544.5, MJD(J2000))
}

func TestDayFraction(t *testing.T) {
	assert.Equal(t, 0.0, DayFraction(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0.5, DayFraction(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(86399999999999), NanosOfDay(time.Date(2024, 1, 1, 23, 59, 59, 999999999, time.UTC)))
}

func TestFloorDivMod(t *testing.T) {
	for _, tt := range []struct {
		a, n     int
		div, mod int
	}{
		{a: 7, n: 3, div: 2, mod: 1},
		{a: 6, n: 3, div: 2, mod: 0},
		{a: -1, n: 20, div: -1, mod: 19},
		{a: -20, n: 20, div: -1, mod: 0},
		{a: -21, n: 20, div: -2, mod: 19},
	} {
		assert.Equal(t, tt.div, FloorDiv(tt.a, tt.n), "FloorDiv(%d, %d)", tt.a, tt.n)
		assert.Equal(t, tt.mod, Mod(tt.a, tt.n), "Mod(%d, %d)", tt.a, tt.n)
	}

	for a := -1000; a <= 1000; a++ {
		require.Equal(t, a, FloorDiv(a, 7)*7+Mod(a, 7), "a %d", a)
	}
}

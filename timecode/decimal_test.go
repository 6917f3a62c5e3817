package timecode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/altcal/calendar"
)

func clock(h, m, s, ns int) time.Time {
	return time.Date(2024, time.March, 14, h, m, s, ns, time.UTC)
}

func TestToDecimal(t *testing.T) {
	for _, tt := range []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "midnight", t: clock(0, 0, 0, 0), want: "0:00:00"},
		{name: "six", t: clock(6, 0, 0, 0), want: "2:50:00"},
		{name: "ten", t: clock(10, 0, 0, 0), want: "4:16:66"},
		{name: "noon", t: clock(12, 0, 0, 0), want: "5:00:00"},
		{name: "last nanosecond", t: clock(23, 59, 59, 999999999), want: "9:99:99"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToDecimal(tt.t).String())
		})
	}
}

func TestToDecimalBounds(t *testing.T) {
	for s := 0; s < 86400; s += 7 {
		d := ToDecimal(clock(0, 0, s, 0))

		require.GreaterOrEqual(t, d.Hour, 0)
		require.LessOrEqual(t, d.Hour, 9)
		require.LessOrEqual(t, d.Minute, 99)
		require.LessOrEqual(t, d.Second, 99)
	}
}

func TestDecimal(t *testing.T) {
	t.Run("Clock", func(t *testing.T) {
		res, err := NewDecimal(nil).Convert(clock(10, 0, 0, 0))
		require.NoError(t, err)

		assert.Equal(t, "4:16:66", res.State)
		assert.Equal(t, []string{"hours", "minutes", "seconds", "day_fraction"}, res.Attributes.Keys())

		v, _ := res.Attributes.Get("day_fraction")
		assert.Equal(t, "0.41666", v)
	})

	t.Run("Fraction", func(t *testing.T) {
		res, err := NewDecimal(calendar.Options{"format": "fraction"}).Convert(clock(10, 0, 0, 0))
		require.NoError(t, err)

		assert.Equal(t, "0.41666", res.State)
	})

	t.Run("Invalid Format", func(t *testing.T) {
		require.Equal(t, DecimalFormatClock, NewDecimal(calendar.Options{"format": "sexagesimal"}).Format)
	})
}

func TestHexadecimal(t *testing.T) {
	for _, tt := range []struct {
		name  string
		t     time.Time
		plain string
		split string
	}{
		{name: "midnight", t: clock(0, 0, 0, 0), plain: "0000", split: "0_00_0"},
		{name: "six", t: clock(6, 0, 0, 0), plain: "4000", split: "4_00_0"},
		{name: "noon", t: clock(12, 0, 0, 0), plain: "8000", split: "8_00_0"},
		{name: "afternoon", t: clock(15, 45, 30, 0), plain: "A816", split: "A_81_6"},
		{name: "last nanosecond", t: clock(23, 59, 59, 999999999), plain: "FFFF", split: "F_FF_F"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewHexadecimal(nil).Convert(tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, res.State)

			res, err = NewHexadecimal(calendar.Options{"style": "split"}).Convert(tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.split, res.State)
		})
	}
}

func TestToHexBounds(t *testing.T) {
	for s := 0; s < 86400; s += 5 {
		x := ToHex(clock(0, 0, s, 0))

		require.GreaterOrEqual(t, x, 0)
		require.Less(t, x, HexUnitsPerDay)
	}
}

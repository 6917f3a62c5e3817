package mesoamerica

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlowe/altcal/calendar"
)

func TestMaya(t *testing.T) {
	for _, tt := range []struct {
		name string
		t    time.Time
		opts calendar.Options
		want string
		lord string
	}{
		{
			name: "end of the 13th baktun",
			t:    time.Date(2012, time.December, 21, 0, 0, 0, 0, time.UTC),
			want: "13.0.0.0.0 4 Ahau 3 Kankin",
			lord: "G9",
		},
		{
			name: "lounsbury",
			t:    time.Date(2012, time.December, 21, 0, 0, 0, 0, time.UTC),
			opts: calendar.Options{"correlation": "lounsbury"},
			want: "12.19.19.17.18 2 Etznab 1 Kankin",
			lord: "G7",
		},
		{
			name: "new year 2024",
			t:    time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC),
			want: "13.0.11.3.8 2 Lamat 16 Kankin",
			lord: "G5",
		},
		{
			name: "modern orthography",
			t:    time.Date(2024, time.January, 1, 18, 0, 0, 0, time.UTC),
			opts: calendar.Options{"orthography": "modern"},
			want: "13.0.11.3.8 2 Lamat 16 K'ank'in",
			lord: "G5",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewMaya(tt.opts).Convert(tt.t)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.State)

			lord, _ := res.Attributes.Get("lord_of_the_night")
			assert.Equal(t, tt.lord, lord)
		})
	}
}

func TestMayaWayeb(t *testing.T) {
	res, err := NewMaya(nil).Convert(time.Date(2024, time.March, 25, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "13.0.11.7.12 8 Eb 0 Uayeb", res.State)

	wayeb, _ := res.Attributes.Get("wayeb")
	assert.Equal(t, true, wayeb)

	day, _ := res.Attributes.Get("wayeb_day")
	assert.Equal(t, 1, day)

	t.Run("Modern Orthography", func(t *testing.T) {
		res, err := NewMaya(calendar.Options{"orthography": "modern"}).Convert(time.Date(2024, time.March, 29, 12, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		haab, _ := res.Attributes.Get("haab")
		assert.Equal(t, "4 Wayeb'", haab)
	})

	t.Run("Not A Month", func(t *testing.T) {
		for _, names := range HaabMonths {
			assert.Equal(t, wayebMonth, names.Len(calendar.DefaultLanguage))
		}
	})
}

func TestTzolkinPeriod(t *testing.T) {
	for d := -1000; d < 5000; d++ {
		n1, s1 := Tzolkin(d)
		n2, s2 := Tzolkin(d + 260)

		require.Equal(t, n1, n2, "day %d", d)
		require.Equal(t, s1, s2, "day %d", d)

		require.GreaterOrEqual(t, n1, 1)
		require.LessOrEqual(t, n1, 13)
	}
}

func TestHaabWayebLength(t *testing.T) {
	wayeb := 0
	for d := range 365 {
		if _, month := Haab(d); month == wayebMonth {
			wayeb++
		}
	}

	require.Equal(t, 5, wayeb)
}

func TestToLongCount(t *testing.T) {
	require.Equal(t, "0.0.0.0.0", ToLongCount(0).String())
	require.Equal(t, "13.0.0.0.0", ToLongCount(13*144000).String())
	require.Equal(t, "-1.19.19.17.19", ToLongCount(-1).String())
}

package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDarianLeap(t *testing.T) {
	for year, want := range map[int]bool{
		0:   true,
		1:   true,
		2:   false,
		10:  true,
		100: false,
		101: true,
		219: true,
		220: true,
		222: false,
		500: true,
	} {
		assert.Equal(t, want, IsDarianLeap(year), "year %d", year)
	}
}

func TestDarianCycle(t *testing.T) {
	total := 0
	for y := range darianCycleYears {
		year := 0
		for m := 1; m <= 24; m++ {
			year += DarianMonthSols(y, m)
		}

		require.Equal(t, DarianYearSols(y), year, "year %d", y)
		total += year
	}

	require.Equal(t, darianCycleSols, total)
}

func TestToDarian(t *testing.T) {
	for _, tt := range []struct {
		sols int
		want DarianDate
	}{
		{sols: 0, want: DarianDate{Year: 0, Month: 1, Sol: 1}},
		{sols: 27, want: DarianDate{Year: 0, Month: 1, Sol: 28}},
		{sols: 28, want: DarianDate{Year: 0, Month: 2, Sol: 1}},
		{sols: 668, want: DarianDate{Year: 0, Month: 24, Sol: 28}},
		{sols: 669, want: DarianDate{Year: 1, Month: 1, Sol: 1}},
		{sols: darianCycleSols, want: DarianDate{Year: 500, Month: 1, Sol: 1}},
		{sols: -1, want: DarianDate{Year: -1, Month: 24, Sol: 28}},
	} {
		require.Equal(t, tt.want, ToDarian(tt.sols), "sols %d", tt.sols)
	}
}

func TestDarian(t *testing.T) {
	for _, tt := range []struct {
		t       time.Time
		want    string
		weekSol string
	}{
		{t: time.Date(2022, time.December, 26, 0, 0, 0, 0, time.UTC), want: "Sol 1 Sagittarius 220", weekSol: "Sol Solis"},
		{t: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), want: "Sol 28 Gemini 220", weekSol: "Sol Saturni"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			res, err := Darian{}.Convert(tt.t)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.State)

			weekSol, _ := res.Attributes.Get("week_sol")
			assert.Equal(t, tt.weekSol, weekSol)

			leap, _ := res.Attributes.Get("leap_year")
			assert.Equal(t, true, leap)
		})
	}
}

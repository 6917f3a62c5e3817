package lunisolar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestColignyLustrum(t *testing.T) {
	days, months := 0, 0
	for _, year := range colignyLustrum {
		for _, m := range year {
			days += m.days
			months++
		}
	}

	require.Equal(t, LustrumDays, days)
	require.Equal(t, 62, months)
	require.Len(t, colignyLustrum[2], 13)
	require.Equal(t, "Rantaranos", colignyLustrum[2][6].name)
}

func TestColigny(t *testing.T) {
	for _, tt := range []struct {
		t       time.Time
		want    string
		lustrum int
		year    int
	}{
		{t: date(2021, time.May, 19), want: "1 Quimonios MAT", lustrum: 1, year: 1},
		{t: date(2021, time.June, 18), want: "1 Samonios MAT", lustrum: 1, year: 1},
		{t: date(2021, time.July, 2), want: "15 Samonios MAT ATENOUX", lustrum: 1, year: 1},
		{t: date(2023, time.November, 23), want: "1 Rantaranos MAT", lustrum: 1, year: 3},
		{t: date(2023, time.December, 23), want: "1 Giamonios ANM", lustrum: 1, year: 3},
		{t: date(2026, time.May, 27), want: "29 Cantlos ANM", lustrum: 1, year: 5},
		{t: date(2026, time.May, 28), want: "1 Quimonios MAT", lustrum: 2, year: 1},
		{t: date(2021, time.May, 18), want: "29 Cantlos ANM", lustrum: 0, year: 5},
	} {
		t.Run(tt.t.Format(time.DateOnly), func(t *testing.T) {
			res, err := Coligny{}.Convert(tt.t)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.State)

			lustrum, _ := res.Attributes.Get("lustrum")
			assert.Equal(t, tt.lustrum, lustrum)

			year, _ := res.Attributes.Get("year_in_lustrum")
			assert.Equal(t, tt.year, year)
		})
	}
}

func TestColignyHalves(t *testing.T) {
	d := ColignyDate{Month: "Samonios", MonthDays: 30, Day: 16}

	assert.Equal(t, 2, d.Half())
	assert.Equal(t, 1, d.DayInHalf())
	assert.False(t, d.Atenoux())
	assert.Equal(t, Matus, d.Quality())
}

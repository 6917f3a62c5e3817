package zoroastrian

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.UTC)
}

func TestCalendar(t *testing.T) {
	for _, tt := range []struct {
		name    string
		variant Variant
		t       time.Time
		want    string
	}{
		{name: "shenshai new year", variant: Shenshai, t: day(2024, time.August, 15), want: "Hormazd, 1 Farvardin 1394 YZ"},
		{name: "shenshai last gatha", variant: Shenshai, t: day(2024, time.August, 14), want: "Vahishtoisht Gatha 1393 YZ"},
		{name: "shenshai first gatha", variant: Shenshai, t: day(2024, time.August, 10), want: "Ahunavad Gatha 1393 YZ"},
		{name: "shenshai month end", variant: Shenshai, t: day(2024, time.September, 13), want: "Aneran, 30 Farvardin 1394 YZ"},
		{name: "kadmi new year", variant: Kadmi, t: day(2024, time.July, 16), want: "Hormazd, 1 Farvardin 1394 YZ"},
		{name: "kadmi one month ahead", variant: Kadmi, t: day(2024, time.August, 15), want: "Hormazd, 1 Ardibehesht 1394 YZ"},
		{name: "fasli new year", variant: Fasli, t: day(2024, time.March, 21), want: "Hormazd, 1 Farvardin 1394 YZ"},
		{name: "fasli leap day", variant: Fasli, t: day(2024, time.March, 20), want: "Avardad-sal-Gah Gatha 1393 YZ"},
		{name: "fasli common year end", variant: Fasli, t: day(2025, time.March, 20), want: "Vahishtoisht Gatha 1394 YZ"},
		{name: "fasli next new year", variant: Fasli, t: day(2025, time.March, 21), want: "Hormazd, 1 Farvardin 1395 YZ"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calendar{Variant: tt.variant}.Convert(tt.t)
			require.NoError(t, err)

			assert.Equal(t, tt.want, res.State)
		})
	}
}

func TestFasliNewYearIsAlwaysMarch21(t *testing.T) {
	for y := 1900; y <= 2100; y++ {
		date := Fasli.Date(jd.Number(y, 3, 21))

		require.Equal(t, 0, date.DayOfYear, "year %d", y)
		require.Equal(t, y-630, date.Year)
	}
}

func TestKadmiShenshaiOffset(t *testing.T) {
	start := jd.Number(1990, 1, 1)
	for jdn := start; jdn < start+20000; jdn += 3 {
		require.Equal(t, Shenshai.Date(jdn+30).DayOfYear, Kadmi.Date(jdn).DayOfYear, "jdn %d", jdn)
	}
}

func TestShowShenshai(t *testing.T) {
	d := Descriptors()[1]
	require.Equal(t, "kadmi", d.ID)

	res, err := d.New(map[string]any{"show_shenshai": true}, language.English).Convert(day(2024, time.August, 15))
	require.NoError(t, err)

	shenshai, ok := res.Attributes.Get("shenshai")
	require.True(t, ok)
	assert.Equal(t, "Hormazd, 1 Farvardin 1394 YZ", shenshai)

	roj, _ := res.Attributes.Get("roj")
	assert.Equal(t, "Hormazd", roj)
}

func TestDate(t *testing.T) {
	d := Date{Year: 1394, DayOfYear: 359}
	assert.Equal(t, 12, d.Month())
	assert.Equal(t, 30, d.Day())
	assert.False(t, d.Gatha())

	d = Date{Year: 1394, DayOfYear: 362}
	assert.Equal(t, 0, d.Month())
	assert.Equal(t, 3, d.Day())
	assert.True(t, d.Gatha())
}

func TestDateNames(t *testing.T) {
	t.Run("Month Day", func(t *testing.T) {
		got, err := Date{Year: 1394, DayOfYear: 31}.Names()
		require.NoError(t, err)
		assert.Equal(t, DayNames{Roj: "Bahman", Month: "Ardibehesht"}, got)
	})

	t.Run("Gatha", func(t *testing.T) {
		got, err := Date{Year: 1393, DayOfYear: 365}.Names()
		require.NoError(t, err)
		assert.Equal(t, DayNames{Gatha: "Avardad-sal-Gah"}, got)
	})

	t.Run("Past The Year", func(t *testing.T) {
		d := Date{Year: 1394, DayOfYear: 366}

		_, err := d.Names()
		require.ErrorIs(t, err, calendar.ErrTableIndex)

		state, err := Format(d)
		require.ErrorIs(t, err, calendar.ErrTableIndex)
		assert.Empty(t, state)
	})
}

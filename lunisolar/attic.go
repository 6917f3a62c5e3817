package lunisolar

import (
	"fmt"
	"math"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	// SynodicMonth is the mean length of a lunation in days.
	SynodicMonth = 29.530588853
	// NewMoonReference is the Julian Date of the mean new moon of 6 January 2000.
	NewMoonReference = 2451550.09766

	// olympiadEpoch is the astronomical year in which the first Olympiad began (776 BC).
	olympiadEpoch = -775
)

var (
	AtticMonths = calendar.Fixed(
		"Hekatombaion", "Metageitnion", "Boedromion", "Pyanepsion", "Maimakterion", "Poseideon",
		"Gamelion", "Anthesterion", "Elaphebolion", "Mounichion", "Thargelion", "Skirophorion",
	)

	// AtticDecades name the three ten day periods of a month: waxing, middle and waning.
	AtticDecades = calendar.Fixed("histamenou", "mesountos", "phthinontos")
)

// NewMoonDay returns the Julian Day Number of the civil day (UTC) containing mean new moon k.
func NewMoonDay(k int) int {
	return int(math.Floor(NewMoonReference + SynodicMonth*float64(k) + 0.5))
}

// Lunation returns the index of the lunation whose new moon day is the latest on or before jdn.
func Lunation(jdn int) int {
	k := int(math.Floor((float64(jdn) - NewMoonReference) / SynodicMonth))
	for NewMoonDay(k+1) <= jdn {
		k++
	}

	for NewMoonDay(k) > jdn {
		k--
	}

	return k
}

// atticYearStart returns the first lunation of the Attic year beginning in the summer of the Gregorian year: the
// first new moon on or after 21 June.
func atticYearStart(year int) int {
	solstice := jd.Number(year, 6, 21)

	k := Lunation(solstice)
	if NewMoonDay(k) < solstice {
		k++
	}

	return k
}

// AtticDate is a date in the Athenian festival calendar.
type AtticDate struct {
	// Year is the astronomical Gregorian year in whose summer the Attic year began.
	Year int

	// Month is the 0-based month. In 13 month years Poseideon II is month 6.
	Month  int
	Months int

	Day       int
	MonthDays int
}

// Olympiad returns the Olympiad and the year (1-4) within it.
func (d AtticDate) Olympiad() (olympiad, year int) {
	since := d.Year - olympiadEpoch
	return jd.FloorDiv(since, 4) + 1, jd.Mod(since, 4) + 1
}

// Embolimos reports whether the year has an intercalated thirteenth month.
func (d AtticDate) Embolimos() bool {
	return d.Months == 13
}

// MonthName returns the name of the month, taking the intercalary Poseideon II into account.
func (d AtticDate) MonthName() (string, error) {
	const poseideon = 5

	switch {
	case !d.Embolimos() || d.Month <= poseideon:
		return names(AtticMonths, d.Month)
	case d.Month == poseideon+1:
		name, err := names(AtticMonths, poseideon)
		return name + " II", err
	default:
		return names(AtticMonths, d.Month-1)
	}
}

// Decade returns the index into AtticDecades of the day.
func (d AtticDate) Decade() int {
	return min((d.Day-1)/10, 2)
}

// ToAttic converts a Julian Day Number to an Attic date.
func ToAttic(jdn int) AtticDate {
	k := Lunation(jdn)

	year, _, _ := jd.Civil(jdn)
	start := atticYearStart(year)
	if k < start {
		year--
		start = atticYearStart(year)
	}

	begin := NewMoonDay(k)
	return AtticDate{
		Year:      year,
		Month:     k - start,
		Months:    atticYearStart(year+1) - start,
		Day:       jdn - begin + 1,
		MonthDays: NewMoonDay(k+1) - begin,
	}
}

// Attic is the Athenian lunisolar festival calendar for the local civil date.
type Attic struct{}

func (Attic) Convert(t time.Time) (calendar.Result, error) {
	date := ToAttic(jd.DayNumber(t))

	month, err := date.MonthName()
	if err != nil {
		return calendar.Result{}, err
	}

	decade, err := names(AtticDecades, date.Decade())
	if err != nil {
		return calendar.Result{}, err
	}

	olympiad, year := date.Olympiad()

	return calendar.Result{
		State: fmt.Sprintf("%d %s, Ol. %d.%d", date.Day, month, olympiad, year),
		Attributes: calendar.NewFields().
			Set("month", month).
			Set("day", date.Day).
			Set("month_days", date.MonthDays).
			Set("decade", decade).
			Set("olympiad", olympiad).
			Set("olympiad_year", year).
			Set("embolimos", date.Embolimos()).
			Set("archon_year", fmt.Sprintf("%d/%d", date.Year, date.Year+1)),
	}, nil
}

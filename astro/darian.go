package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/nlowe/altcal/calendar"
)

const (
	// DarianEpochOffset is added to the integer Mars Sol Date to count sols since sol 1 of Darian year 0.
	DarianEpochOffset = 94129

	darianCycleYears = 500
	darianCycleSols  = 334296
)

var (
	DarianMonths = calendar.Fixed(
		"Sagittarius", "Dhanus", "Capricornus", "Makara", "Aquarius", "Kumbha",
		"Pisces", "Mina", "Aries", "Mesha", "Taurus", "Rishabha",
		"Gemini", "Mithuna", "Cancer", "Karka", "Leo", "Simha",
		"Virgo", "Kanya", "Libra", "Tula", "Scorpius", "Vrishika",
	)
	DarianWeekSols = calendar.Fixed(
		"Sol Solis", "Sol Lunae", "Sol Martis", "Sol Mercurii", "Sol Jovis", "Sol Veneris", "Sol Saturni",
	)
)

// IsDarianLeap reports whether a Darian year has 669 sols: odd years and years divisible by 10, except years
// divisible by 100 that are not divisible by 500.
func IsDarianLeap(year int) bool {
	if year%100 == 0 {
		return year%500 == 0
	}

	return year%2 != 0 || year%10 == 0
}

// DarianYearSols returns the number of sols in a Darian year.
func DarianYearSols(year int) int {
	if IsDarianLeap(year) {
		return 669
	}

	return 668
}

// DarianMonthSols returns the number of sols in month (1-24) of year. Every sixth month has 27 sols, except the last
// month of a leap year.
func DarianMonthSols(year, month int) int {
	switch {
	case month == 24 && IsDarianLeap(year):
		return 28
	case month%6 == 0:
		return 27
	default:
		return 28
	}
}

// DarianDate is a date in the Darian calendar.
type DarianDate struct {
	Year, Month, Sol int
}

// ToDarian converts a count of sols since the Darian epoch to a date.
func ToDarian(sols int) DarianDate {
	cycles := sols / darianCycleSols
	rem := sols % darianCycleSols
	if rem < 0 {
		cycles--
		rem += darianCycleSols
	}

	year := cycles * darianCycleYears
	for n := DarianYearSols(year); rem >= n; n = DarianYearSols(year) {
		rem -= n
		year++
	}

	month := 1
	for n := DarianMonthSols(year, month); rem >= n; n = DarianMonthSols(year, month) {
		rem -= n
		month++
	}

	return DarianDate{Year: year, Month: month, Sol: rem + 1}
}

// Darian is the Darian calendar of Mars, driven by the Mars Sol Date in UTC.
type Darian struct{}

func (Darian) Convert(t time.Time) (calendar.Result, error) {
	msd := SolDate(t)
	date := ToDarian(int(math.Floor(msd)) + DarianEpochOffset)

	month, err := DarianMonths.At(calendar.DefaultLanguage, date.Month-1)
	if err != nil {
		return calendar.Result{}, err
	}

	weekSol, err := DarianWeekSols.At(calendar.DefaultLanguage, (date.Sol-1)%7)
	if err != nil {
		return calendar.Result{}, err
	}

	return calendar.Result{
		State: fmt.Sprintf("Sol %d %s %d", date.Sol, month, date.Year),
		Attributes: calendar.NewFields().
			Set("year", date.Year).
			Set("month", date.Month).
			Set("month_name", month).
			Set("sol", date.Sol).
			Set("week_sol", weekSol).
			Set("leap_year", IsDarianLeap(date.Year)).
			Set("sols_since_epoch", int(math.Floor(msd))+DarianEpochOffset),
	}, nil
}

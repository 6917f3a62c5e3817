package lunisolar

import (
	"fmt"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	// LustrumDays is the length of the five year Coligny cycle.
	LustrumDays = 1835

	Matus  = "MAT"
	Anmatu = "ANM"

	atenouxDay = 15
)

// ColignyEpoch is the Julian Day Number of 1 Quimonios, the first day of a lustrum.
var ColignyEpoch = jd.Number(2021, 5, 19)

type colignyMonth struct {
	name string
	days int
}

var (
	quimonios  = colignyMonth{name: "Quimonios", days: 30}
	rantaranos = colignyMonth{name: "Rantaranos", days: 30}

	colignyRegular = []colignyMonth{
		{name: "Samonios", days: 30},
		{name: "Dumannios", days: 29},
		{name: "Riuros", days: 30},
		{name: "Anagantios", days: 29},
		{name: "Ogronnios", days: 30},
		{name: "Cutios", days: 30},
		{name: "Giamonios", days: 29},
		{name: "Simivisonnios", days: 30},
		{name: "Equos", days: 30},
		{name: "Elembivios", days: 29},
		{name: "Aedrinios", days: 30},
		{name: "Cantlos", days: 29},
	}

	// colignyLustrum lists the months of each year of the lustrum, in order.
	colignyLustrum = func() [5][]colignyMonth {
		var years [5][]colignyMonth
		for i := range years {
			years[i] = append(years[i], colignyRegular...)
		}

		years[0] = append([]colignyMonth{quimonios}, years[0]...)
		years[2] = append(append(append([]colignyMonth{}, colignyRegular[:6]...), rantaranos), colignyRegular[6:]...)
		return years
	}()
)

// ColignyDate is a date in the Coligny calendar.
type ColignyDate struct {
	// Lustrum is the 1-based cycle counted from ColignyEpoch.
	Lustrum int
	// Year is the 1-based year in the lustrum.
	Year int

	Month     string
	MonthDays int
	Day       int
}

// Quality returns MAT for 30 day months and ANM for 29 day months.
func (d ColignyDate) Quality() string {
	if d.MonthDays == 30 {
		return Matus
	}

	return Anmatu
}

// Atenoux reports whether the day is the 15th, which closes the first half of the month.
func (d ColignyDate) Atenoux() bool {
	return d.Day == atenouxDay
}

// Half returns 1 for days up to and including ATENOUX, and 2 after.
func (d ColignyDate) Half() int {
	if d.Day <= atenouxDay {
		return 1
	}

	return 2
}

// DayInHalf returns the day counted within its half month.
func (d ColignyDate) DayInHalf() int {
	if d.Day <= atenouxDay {
		return d.Day
	}

	return d.Day - atenouxDay
}

// ToColigny converts a Julian Day Number to a Coligny date.
func ToColigny(jdn int) ColignyDate {
	offset := jdn - ColignyEpoch
	rem := jd.Mod(offset, LustrumDays)
	date := ColignyDate{Lustrum: jd.FloorDiv(offset, LustrumDays) + 1}

	for y, months := range colignyLustrum {
		for _, m := range months {
			if rem < m.days {
				date.Year = y + 1
				date.Month = m.name
				date.MonthDays = m.days
				date.Day = rem + 1
				return date
			}

			rem -= m.days
		}
	}

	panic(fmt.Sprintf("coligny: offset %d outside of lustrum", offset))
}

// Coligny is the Gaulish Coligny calendar for the local civil date.
type Coligny struct{}

func (Coligny) Convert(t time.Time) (calendar.Result, error) {
	date := ToColigny(jd.DayNumber(t))

	state := fmt.Sprintf("%d %s %s", date.Day, date.Month, date.Quality())
	if date.Atenoux() {
		state += " ATENOUX"
	}

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("lustrum", date.Lustrum).
			Set("year_in_lustrum", date.Year).
			Set("month", date.Month).
			Set("day", date.Day).
			Set("quality", date.Quality()).
			Set("half", date.Half()).
			Set("day_in_half", date.DayInHalf()).
			Set("atenoux", date.Atenoux()).
			Set("intercalary", date.Month == quimonios.name || date.Month == rantaranos.name),
	}, nil
}

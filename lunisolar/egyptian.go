package lunisolar

import (
	"fmt"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	// NabonassarEpoch is the Julian Day Number of 1 Thoth, year 1 of the era of Nabonassar (26 February 747 BC).
	NabonassarEpoch = 1448638

	EgyptianNamesGreek    = "greek"
	EgyptianNamesEgyptian = "egyptian"

	epagomenalStart = 360
)

var (
	EgyptianMonths = map[string]calendar.Names{
		EgyptianNamesGreek: calendar.Fixed(
			"Thoth", "Phaophi", "Athyr", "Choiak", "Tybi", "Mechir",
			"Phamenoth", "Pharmouthi", "Pachon", "Payni", "Epiphi", "Mesore",
		),
		EgyptianNamesEgyptian: calendar.Fixed(
			"Tekh", "Menhet", "Hwt-hrw", "Ka-hr-ka", "Ta-aabet", "Mekhir",
			"Pa-en-Amenhotep", "Pa-en-Renenutet", "Pa-en-Khonsu", "Pa-en-Inet", "Ipip", "Mesut-Ra",
		),
	}

	EgyptianSeasons = calendar.Fixed("Akhet", "Peret", "Shemu")

	// Epagomenal days are the birthdays of the gods.
	Epagomenal = calendar.Fixed("Osiris", "Horus", "Set", "Isis", "Nephthys")
)

// EgyptianDate is a date in the wandering civil year.
type EgyptianDate struct {
	Year int
	// DayOfYear is 0-based. Days from 360 are epagomenal.
	DayOfYear int
}

// ToEgyptian converts a Julian Day Number to the Nabonassar era.
func ToEgyptian(jdn int) EgyptianDate {
	days := jdn - NabonassarEpoch
	return EgyptianDate{Year: jd.FloorDiv(days, 365) + 1, DayOfYear: jd.Mod(days, 365)}
}

// Egyptian is the Egyptian civil calendar of 365 days, counted in the era of Nabonassar.
type Egyptian struct {
	Names string
}

// NewEgyptian constructs Egyptian from its options.
func NewEgyptian(opts calendar.Options) Egyptian {
	return Egyptian{Names: opts.Enum("names", EgyptianNamesGreek, EgyptianNamesGreek, EgyptianNamesEgyptian)}
}

func (e Egyptian) Convert(t time.Time) (calendar.Result, error) {
	date := ToEgyptian(jd.DayNumber(t))

	attrs := calendar.NewFields().
		Set("year", date.Year).
		Set("day_of_year", date.DayOfYear+1)

	if date.DayOfYear >= epagomenalStart {
		god, err := names(Epagomenal, date.DayOfYear-epagomenalStart)
		if err != nil {
			return calendar.Result{}, err
		}

		attrs.Set("epagomenal", true).Set("birthday_of", god)
		return calendar.Result{
			State:      fmt.Sprintf("Birthday of %s, year %d", god, date.Year),
			Attributes: attrs,
		}, nil
	}

	month, err := names(EgyptianMonths[e.Names], date.DayOfYear/30)
	if err != nil {
		return calendar.Result{}, err
	}

	season, err := names(EgyptianSeasons, date.DayOfYear/120)
	if err != nil {
		return calendar.Result{}, err
	}

	day := date.DayOfYear%30 + 1
	attrs.
		Set("epagomenal", false).
		Set("month", month).
		Set("day", day).
		Set("season", season)

	return calendar.Result{
		State:      fmt.Sprintf("%d %s, year %d", day, month, date.Year),
		Attributes: attrs,
	}, nil
}

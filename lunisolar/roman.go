package lunisolar

import (
	"fmt"
	"strings"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	RomanStyleFull        = "full"
	RomanStyleAbbreviated = "abbreviated"

	// aucOffset converts a year AD to a year ab urbe condita.
	aucOffset = 753
)

var (
	// RomanMonthsAccusative are used after "ante diem" and "pridie".
	RomanMonthsAccusative = calendar.Fixed(
		"Ianuarias", "Februarias", "Martias", "Apriles", "Maias", "Iunias",
		"Iulias", "Augustas", "Septembres", "Octobres", "Novembres", "Decembres",
	)

	// RomanMonthsAblative are used on the Kalends, Nones and Ides themselves.
	RomanMonthsAblative = calendar.Fixed(
		"Ianuariis", "Februariis", "Martiis", "Aprilibus", "Maiis", "Iuniis",
		"Iuliis", "Augustis", "Septembribus", "Octobribus", "Novembribus", "Decembribus",
	)

	RomanMonthsAbbreviated = calendar.Fixed(
		"Ian.", "Feb.", "Mart.", "Apr.", "Mai.", "Iun.", "Iul.", "Aug.", "Sept.", "Oct.", "Nov.", "Dec.",
	)

	// RomanWeekdays is indexed by time.Weekday.
	RomanWeekdays = calendar.Fixed(
		"Dies Solis", "Dies Lunae", "Dies Martis", "Dies Mercurii", "Dies Iovis", "Dies Veneris", "Dies Saturni",
	)
)

// ToRoman renders a positive integer in Roman numerals.
func ToRoman(n int) string {
	if n <= 0 {
		return ""
	}

	var sb strings.Builder
	for _, d := range []struct {
		value  int
		symbol string
	}{
		{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
		{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
		{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
	} {
		for ; n >= d.value; n -= d.value {
			sb.WriteString(d.symbol)
		}
	}

	return sb.String()
}

// Nones returns the day of the Nones of month: the 7th in March, May, July and October, else the 5th.
func Nones(month time.Month) int {
	switch month {
	case time.March, time.May, time.July, time.October:
		return 7
	default:
		return 5
	}
}

// Ides returns the day of the Ides of month, always eight days after the Nones.
func Ides(month time.Month) int {
	return Nones(month) + 8
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func leap(year int) bool {
	return daysIn(year, time.February) == 29
}

// Anchor is one of the three fixed days of a Roman month.
type Anchor int

const (
	Kalends Anchor = iota
	NonesDay
	IdesDay
)

var anchorNames = [...]struct{ accusative, ablative, abbreviated string }{
	Kalends:  {accusative: "Kalendas", ablative: "Kalendis", abbreviated: "Kal."},
	NonesDay: {accusative: "Nonas", ablative: "Nonis", abbreviated: "Non."},
	IdesDay:  {accusative: "Idus", ablative: "Idibus", abbreviated: "Id."},
}

// RomanDate is a day counted inclusively toward the next Kalends, Nones or Ides.
type RomanDate struct {
	Anchor Anchor
	// Month is the month of the anchor, which is the following month for days after the Ides.
	Month time.Month
	// Count is the inclusive count of days to the anchor: 1 on the anchor itself, 2 on the day before (pridie).
	Count int
	// Bis marks the doubled sixth day before the Kalends of March in leap years.
	Bis bool
}

// ToRomanDate converts a Gregorian date.
func ToRomanDate(year int, month time.Month, day int) RomanDate {
	nones, ides := Nones(month), Ides(month)

	switch {
	case day == 1:
		return RomanDate{Anchor: Kalends, Month: month, Count: 1}
	case day <= nones:
		return RomanDate{Anchor: NonesDay, Month: month, Count: nones - day + 1}
	case day <= ides:
		return RomanDate{Anchor: IdesDay, Month: month, Count: ides - day + 1}
	}

	next := month%12 + 1
	if month == time.February && leap(year) {
		switch {
		case day == 24:
			return RomanDate{Anchor: Kalends, Month: next, Count: 6, Bis: true}
		case day > 24:
			return RomanDate{Anchor: Kalends, Month: next, Count: 29 - day + 2}
		default:
			return RomanDate{Anchor: Kalends, Month: next, Count: 28 - day + 2}
		}
	}

	return RomanDate{Anchor: Kalends, Month: next, Count: daysIn(year, month) - day + 2}
}

// Format renders the date in full ("ante diem III Kalendas Ianuarias") or abbreviated ("a.d. III Kal. Ian.") form.
func (r RomanDate) Format(abbreviated bool) (string, error) {
	anchor := anchorNames[r.Anchor]

	if abbreviated {
		month, err := names(RomanMonthsAbbreviated, int(r.Month)-1)
		if err != nil {
			return "", err
		}

		switch {
		case r.Count == 1:
			return fmt.Sprintf("%s %s", anchor.abbreviated, month), nil
		case r.Count == 2:
			return fmt.Sprintf("prid. %s %s", anchor.abbreviated, month), nil
		case r.Bis:
			return fmt.Sprintf("a.d. bis %s %s %s", ToRoman(r.Count), anchor.abbreviated, month), nil
		default:
			return fmt.Sprintf("a.d. %s %s %s", ToRoman(r.Count), anchor.abbreviated, month), nil
		}
	}

	if r.Count == 1 {
		month, err := names(RomanMonthsAblative, int(r.Month)-1)
		return fmt.Sprintf("%s %s", anchor.ablative, month), err
	}

	month, err := names(RomanMonthsAccusative, int(r.Month)-1)
	if err != nil {
		return "", err
	}

	switch {
	case r.Count == 2:
		return fmt.Sprintf("pridie %s %s", anchor.accusative, month), nil
	case r.Bis:
		return fmt.Sprintf("ante diem bis %s %s %s", ToRoman(r.Count), anchor.accusative, month), nil
	default:
		return fmt.Sprintf("ante diem %s %s %s", ToRoman(r.Count), anchor.accusative, month), nil
	}
}

// NundinalLetter returns the letter (A-H) of the eight day market cycle for a Julian Day Number.
func NundinalLetter(jdn int) string {
	return string(rune('A' + jd.Mod(jdn, 8)))
}

// Roman dates the local civil day by Kalends, Nones and Ides, with the year ab urbe condita.
type Roman struct {
	Abbreviated bool
}

// NewRoman constructs Roman from its options.
func NewRoman(opts calendar.Options) Roman {
	return Roman{Abbreviated: opts.Enum("style", RomanStyleFull, RomanStyleFull, RomanStyleAbbreviated) == RomanStyleAbbreviated}
}

func (r Roman) Convert(t time.Time) (calendar.Result, error) {
	date := ToRomanDate(t.Year(), t.Month(), t.Day())

	state, err := date.Format(r.Abbreviated)
	if err != nil {
		return calendar.Result{}, err
	}

	weekday, err := names(RomanWeekdays, int(t.Weekday()))
	if err != nil {
		return calendar.Result{}, err
	}

	auc := t.Year() + aucOffset

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("weekday", weekday).
			Set("nundinal_letter", NundinalLetter(jd.DayNumber(t))).
			Set("auc", auc).
			Set("auc_roman", ToRoman(auc)+" AUC"),
	}, nil
}

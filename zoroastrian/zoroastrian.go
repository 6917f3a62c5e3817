// Package zoroastrian implements the three Zoroastrian calendars in use today. Shenshai, Kadmi and Fasli share the
// same year of twelve 30-day months followed by the five Gatha days, and differ only in their epoch and in whether
// they intercalate.
package zoroastrian

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	monthDays  = 30
	gathaStart = 12 * monthDays
	commonDays = gathaStart + 5
)

var (
	Months = calendar.Fixed(
		"Farvardin", "Ardibehesht", "Khordad", "Tir", "Amardad", "Shehrevar",
		"Meher", "Avan", "Adar", "Dae", "Bahman", "Aspandard",
	)

	// Yazatas name the days of each month.
	Yazatas = calendar.Fixed(
		"Hormazd", "Bahman", "Ardibehesht", "Shehrevar", "Aspandard", "Khordad", "Amardad", "Dae-pa-Adar", "Adar", "Avan",
		"Khorshed", "Mohor", "Tir", "Gosh", "Dae-pa-Meher", "Meher", "Srosh", "Rashne", "Fravardin", "Behram",
		"Ram", "Govad", "Dae-pa-Din", "Din", "Ashishvangh", "Ashtad", "Asman", "Zamyad", "Mareshpand", "Aneran",
	)

	// Gathas name the days closing the year. The sixth is only observed in Fasli leap years.
	Gathas = calendar.Fixed("Ahunavad", "Ushtavad", "Spentomad", "Vohukshathra", "Vahishtoisht", "Avardad-sal-Gah")
)

// Variant parameterizes the calendar.
type Variant struct {
	Name string

	// EpochJDN is the Julian Day Number of 1 Farvardin of EpochYear.
	EpochJDN  int
	EpochYear int

	// Leap reports whether a year has the sixth Gatha day. A nil Leap never intercalates.
	Leap func(year int) bool
}

func gregorianLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var (
	Shenshai = Variant{Name: "Shenshai", EpochJDN: jd.Number(2024, 8, 15), EpochYear: 1394}
	Kadmi    = Variant{Name: "Kadmi", EpochJDN: Shenshai.EpochJDN - 30, EpochYear: 1394}
	Fasli    = Variant{
		Name:      "Fasli",
		EpochJDN:  jd.Number(2024, 3, 21),
		EpochYear: 1394,
		// Fasli year Y contains the February of Gregorian year Y+631, so New Year stays on March 21.
		Leap: func(year int) bool { return gregorianLeap(year + 631) },
	}
)

// IsLeap reports whether year has 366 days in this variant.
func (v Variant) IsLeap(year int) bool {
	return v.Leap != nil && v.Leap(year)
}

// YearDays returns the length of year.
func (v Variant) YearDays(year int) int {
	if v.IsLeap(year) {
		return commonDays + 1
	}

	return commonDays
}

// Date is a date in a Zoroastrian calendar.
type Date struct {
	Year int

	// DayOfYear is 0-based. Days from 360 are Gatha days.
	DayOfYear int
}

// Gatha reports whether the date is one of the Gatha days closing the year.
func (d Date) Gatha() bool {
	return d.DayOfYear >= gathaStart
}

// Month returns the 1-based month, or 0 for Gatha days.
func (d Date) Month() int {
	if d.Gatha() {
		return 0
	}

	return d.DayOfYear/monthDays + 1
}

// Day returns the 1-based day of the month, or of the Gatha days.
func (d Date) Day() int {
	if d.Gatha() {
		return d.DayOfYear - gathaStart + 1
	}

	return d.DayOfYear%monthDays + 1
}

// Date converts a Julian Day Number to a date in the variant.
func (v Variant) Date(jdn int) Date {
	year, rem := v.EpochYear, jdn-v.EpochJDN

	for rem < 0 {
		year--
		rem += v.YearDays(year)
	}

	for n := v.YearDays(year); rem >= n; n = v.YearDays(year) {
		rem -= n
		year++
	}

	return Date{Year: year, DayOfYear: rem}
}

// DayNames holds the names of a date: Gatha for Gatha days, Roj and Month otherwise.
type DayNames struct {
	Gatha string
	Roj   string
	Month string
}

// Names looks up the names of the date. It fails with calendar.ErrTableIndex for a day past the end of the year.
func (d Date) Names() (DayNames, error) {
	if d.Gatha() {
		gatha, err := Gathas.At(calendar.DefaultLanguage, d.DayOfYear-gathaStart)
		return DayNames{Gatha: gatha}, err
	}

	roj, err := Yazatas.At(calendar.DefaultLanguage, d.DayOfYear%monthDays)
	if err != nil {
		return DayNames{}, err
	}

	month, err := Months.At(calendar.DefaultLanguage, d.Month()-1)
	return DayNames{Roj: roj, Month: month}, err
}

// Format renders the date as "Hormazd, 1 Farvardin 1394 YZ", or "Ahunavad Gatha 1394 YZ" for Gatha days.
func Format(d Date) (string, error) {
	names, err := d.Names()
	if err != nil {
		return "", err
	}

	return format(d, names), nil
}

func format(d Date, names DayNames) string {
	if d.Gatha() {
		return fmt.Sprintf("%s Gatha %d YZ", names.Gatha, d.Year)
	}

	return fmt.Sprintf("%s, %d %s %d YZ", names.Roj, d.Day(), names.Month, d.Year)
}

// Calendar is a Zoroastrian calendar for the local civil date.
type Calendar struct {
	Variant Variant

	// Shenshai adds the Shenshai date of the same day as an attribute.
	Shenshai bool
}

func (c Calendar) Convert(t time.Time) (calendar.Result, error) {
	jdn := jd.DayNumber(t)
	date := c.Variant.Date(jdn)

	names, err := date.Names()
	if err != nil {
		return calendar.Result{}, fmt.Errorf("%s: %w", c.Variant.Name, err)
	}

	attrs := calendar.NewFields().
		Set("variant", c.Variant.Name).
		Set("year", date.Year).
		Set("day_of_year", date.DayOfYear+1).
		Set("gatha", date.Gatha()).
		Set("leap_year", c.Variant.IsLeap(date.Year))

	if date.Gatha() {
		attrs.Set("gatha_day", names.Gatha)
	} else {
		attrs.
			Set("month", date.Month()).
			Set("month_name", names.Month).
			Set("day", date.Day()).
			Set("roj", names.Roj)
	}

	if c.Shenshai {
		shenshai, err := Format(Shenshai.Date(jdn))
		if err != nil {
			return calendar.Result{}, fmt.Errorf("shenshai: %w", err)
		}

		attrs.Set("shenshai", shenshai)
	}

	return calendar.Result{State: format(date, names), Attributes: attrs}, nil
}

// Descriptors returns the calendar.Descriptor for every calendar in this package.
func Descriptors() []calendar.Descriptor {
	return []calendar.Descriptor{
		{
			ID: "shenshai", Name: "Shenshai Calendar", Icon: "mdi:fire",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Calendar{Variant: Shenshai} },
		},
		{
			ID: "kadmi", Name: "Kadmi Calendar", Icon: "mdi:fire",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(opts calendar.Options, _ language.Tag) calendar.Calendar {
				return Calendar{Variant: Kadmi, Shenshai: opts.Bool("show_shenshai", false)}
			},
		},
		{
			ID: "fasli", Name: "Fasli Calendar", Icon: "mdi:fire",
			Interval: time.Hour, Frame: calendar.FrameLocal,
			New: func(calendar.Options, language.Tag) calendar.Calendar { return Calendar{Variant: Fasli} },
		},
	}
}

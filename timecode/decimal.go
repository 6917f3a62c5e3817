package timecode

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	// DecimalUnitsPerDay is the number of decimal seconds in a day (10 hours of 100 minutes of 100 seconds).
	DecimalUnitsPerDay = 100000

	nanosPerDecimalSecond = int64(24*time.Hour) / DecimalUnitsPerDay

	DecimalFormatClock    = "clock"
	DecimalFormatFraction = "fraction"
)

// DecimalTime is French Revolutionary decimal time: a day of 10 hours, each of 100 minutes of 100 seconds.
type DecimalTime struct {
	Hour, Minute, Second int
}

func (d DecimalTime) String() string {
	return fmt.Sprintf("%d:%02d:%02d", d.Hour, d.Minute, d.Second)
}

// Units returns the number of decimal seconds elapsed since midnight.
func (d DecimalTime) Units() int {
	return d.Hour*10000 + d.Minute*100 + d.Second
}

// ToDecimal converts the wall-clock time of day of t to decimal time.
func ToDecimal(t time.Time) DecimalTime {
	units := int(jd.NanosOfDay(t) / nanosPerDecimalSecond)

	return DecimalTime{
		Hour:   units / 10000,
		Minute: units / 100 % 100,
		Second: units % 100,
	}
}

// Decimal is the decimal time calendar. It reads the local wall-clock.
type Decimal struct {
	// Format is DecimalFormatClock ("4:16:40") or DecimalFormatFraction ("0.41666").
	Format string
}

// NewDecimal constructs Decimal from its options.
func NewDecimal(opts calendar.Options) Decimal {
	return Decimal{Format: opts.Enum("format", DecimalFormatClock, DecimalFormatClock, DecimalFormatFraction)}
}

func (d Decimal) Convert(t time.Time) (calendar.Result, error) {
	dt := ToDecimal(t)
	fraction := strconv.FormatFloat(float64(dt.Units())/DecimalUnitsPerDay, 'f', 5, 64)

	state := dt.String()
	if d.Format == DecimalFormatFraction {
		state = fraction
	}

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("hours", dt.Hour).
			Set("minutes", dt.Minute).
			Set("seconds", dt.Second).
			Set("day_fraction", fraction),
	}, nil
}

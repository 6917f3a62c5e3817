package timecode

import (
	"strconv"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

// reducedJDOffset is subtracted from a Julian Date to get a Reduced Julian Date.
const reducedJDOffset = 2400000

// JulianDate publishes the astronomical Julian Date of the instant in UTC.
type JulianDate struct{}

func (JulianDate) Convert(t time.Time) (calendar.Result, error) {
	utc := t.UTC()
	d := jd.FromTime(utc)

	return calendar.Result{
		State: strconv.FormatFloat(d, 'f', 5, 64),
		Attributes: calendar.NewFields().
			Set("jdn", jd.DayNumber(utc)).
			Set("mjd", strconv.FormatFloat(jd.MJD(d), 'f', 5, 64)).
			Set("reduced_jd", strconv.FormatFloat(d-reducedJDOffset, 'f', 5, 64)).
			Set("day_fraction", strconv.FormatFloat(jd.DayFraction(utc), 'f', 5, 64)).
			Set("gregorian", utc.Format(time.DateOnly)),
	}, nil
}

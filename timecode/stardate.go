package timecode

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

// StardateEpochYear is the Gregorian year of stardate 0.
const StardateEpochYear = 2323

// Quotes is the pool the daily log entry quote is drawn from.
var Quotes = []string{
	"Make it so.",
	"Engage.",
	"Space: the final frontier.",
	"Things are only impossible until they're not.",
	"The first duty of every Starfleet officer is to the truth.",
	"It is possible to commit no mistakes and still lose. That is not a weakness; that is life.",
	"Let's see what's out there.",
	"Resistance is futile.",
	"There are four lights!",
	"Tea. Earl Grey. Hot.",
	"Live long and prosper.",
	"Fascinating.",
	"Today is a good day to die.",
	"Insufficient facts always invite danger.",
	"Risk is our business.",
	"Beam me up.",
	"Computers make excellent and efficient servants, but I have no wish to serve under them.",
	"Set phasers to stun.",
}

// ToStardate computes the TNG-style stardate of the wall-clock fields of t.
//
// The time-of-day term is scaled to at most 10 units per day, so values are strictly increasing within a day and from
// one day to the next at the same time of day.
func ToStardate(t time.Time) float64 {
	minutes := float64(jd.NanosOfDay(t)) / float64(time.Minute)

	return 1000*float64(t.Year()-StardateEpochYear) +
		1000*float64(t.YearDay())/365.25 +
		minutes/1440*10
}

// QuoteFor deterministically selects a quote for the Julian Day Number jdn.
func QuoteFor(jdn int) string {
	r := rand.New(rand.NewPCG(uint64(jdn), uint64(len(Quotes))))
	return Quotes[r.IntN(len(Quotes))]
}

// Stardate is the TNG-era stardate calendar. It reads the local wall-clock.
type Stardate struct{}

func (Stardate) Convert(t time.Time) (calendar.Result, error) {
	sd := ToStardate(t)
	state := strconv.FormatFloat(sd, 'f', 2, 64)

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("stardate", sd).
			Set("log_entry", fmt.Sprintf("Captain's log, stardate %s", state)).
			Set("quote", QuoteFor(jd.DayNumber(t))),
	}, nil
}

package timecode

import (
	"fmt"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

// nanosPerCentibeat is one hundredth of a .beat (86.4 seconds / 100).
const nanosPerCentibeat = int64(864 * time.Millisecond)

// BielMeanTime is the fixed reference zone of Swatch Internet Time. It does not observe daylight saving time.
var BielMeanTime = time.FixedZone("BMT", 60*60)

// Centibeats returns the hundredths of a .beat elapsed since midnight BMT for the instant t.
func Centibeats(t time.Time) int {
	return int(jd.NanosOfDay(t.In(BielMeanTime)) / nanosPerCentibeat)
}

// Swatch is Swatch Internet Time: the BMT day divided into 1000 .beats.
type Swatch struct {
	// Centibeats controls whether the state includes hundredths of a beat ("@500.00" vs "@500").
	Centibeats bool
}

// NewSwatch constructs Swatch from its options.
func NewSwatch(opts calendar.Options) Swatch {
	return Swatch{Centibeats: opts.Bool("centibeats", true)}
}

func (s Swatch) Convert(t time.Time) (calendar.Result, error) {
	cb := Centibeats(t)

	state := fmt.Sprintf("@%03d", cb/100)
	if s.Centibeats {
		state = fmt.Sprintf("@%03d.%02d", cb/100, cb%100)
	}

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("beats", cb/100).
			Set("centibeats", cb).
			Set("bmt", t.In(BielMeanTime).Format(time.TimeOnly)),
	}, nil
}

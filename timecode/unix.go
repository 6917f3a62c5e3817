package timecode

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nlowe/altcal/calendar"
)

// Y2038 is the first instant that does not fit in a signed 32-bit time_t.
var Y2038 = time.Unix(1<<31, 0).UTC()

// Unix publishes the number of seconds since the Unix epoch.
type Unix struct{}

func (Unix) Convert(t time.Time) (calendar.Result, error) {
	s := t.Unix()

	return calendar.Result{
		State: strconv.FormatInt(s, 10),
		Attributes: calendar.NewFields().
			Set("milliseconds", t.UnixMilli()).
			Set("hex", fmt.Sprintf("0x%X", s)).
			Set("seconds_until_2038", int64(1<<31)-s).
			Set("iso8601", t.UTC().Format(time.RFC3339)),
	}, nil
}

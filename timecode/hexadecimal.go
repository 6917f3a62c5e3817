package timecode

import (
	"fmt"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	// HexUnitsPerDay is the number of hexadecimal seconds in a day.
	HexUnitsPerDay = 0x10000

	nanosPerHexSecond = int64(24*time.Hour) / HexUnitsPerDay

	HexStylePlain = "plain"
	HexStyleSplit = "split"
)

// ToHex returns the number of hexadecimal seconds elapsed since wall-clock midnight of t, in [0, 0xFFFF].
func ToHex(t time.Time) int {
	return int(jd.NanosOfDay(t) / nanosPerHexSecond)
}

// Hexadecimal is the hexadecimal time calendar, which splits the day into 65536 units written as four hex digits
// (hex hour, two digits of hex minute, hex second). It reads the local wall-clock.
type Hexadecimal struct {
	// Style is HexStylePlain ("A3F1") or HexStyleSplit ("A_3F_1").
	Style string
}

// NewHexadecimal constructs Hexadecimal from its options.
func NewHexadecimal(opts calendar.Options) Hexadecimal {
	return Hexadecimal{Style: opts.Enum("style", HexStylePlain, HexStylePlain, HexStyleSplit)}
}

func (h Hexadecimal) Convert(t time.Time) (calendar.Result, error) {
	x := ToHex(t)

	state := fmt.Sprintf("%04X", x)
	if h.Style == HexStyleSplit {
		state = fmt.Sprintf("%X_%02X_%X", x>>12, x>>4&0xFF, x&0xF)
	}

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("value", x).
			Set("hex_hour", x>>12).
			Set("hex_minute", x>>4&0xFF).
			Set("hex_second", x&0xF),
	}, nil
}

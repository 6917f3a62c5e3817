// Package jd converts between proleptic Gregorian civil dates and the continuous Julian Day count. It is the single
// source of day arithmetic for every calendar that needs to count days across month and year boundaries.
//
// A Julian Day Number (JDN) identifies a civil day. A Julian Date (JD) is a JDN plus the fraction of the day elapsed
// since noon, so midnight at the start of a civil day has a JD of JDN - 0.5.
package jd

import (
	"math"
	"time"
)

const (
	// UnixEpoch is the Julian Date of 1970-01-01T00:00:00Z.
	UnixEpoch = 2440587.5
	// MJDOffset is subtracted from a Julian Date to get a Modified Julian Date.
	MJDOffset = 2400000.5
	// J2000 is the Julian Date of 2000-01-01T12:00:00 (TT, treated as UTC here).
	J2000 = 2451545.0

	secondsPerDay = 86400
	nanosPerDay   = secondsPerDay * int64(time.Second)
)

// Number returns the Julian Day Number of the proleptic Gregorian date. It is exact for all years after -4800.
func Number(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JulianNumber returns the Julian Day Number of a date in the Julian calendar, for epochs recorded before the
// Gregorian reform.
func JulianNumber(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3

	return day + (153*m+2)/5 + 365*y + y/4 - 32083
}

// Civil is the inverse of Number, returning the proleptic Gregorian date of the Julian Day Number.
func Civil(jdn int) (year, month, day int) {
	a := jdn + 32044
	b := (4*a + 3) / 146097
	c := a - 146097*b/4
	d := (4*c + 3) / 1461
	e := c - 1461*d/4
	m := (5*e + 2) / 153

	day = e - (153*m+2)/5 + 1
	month = m + 3 - 12*(m/10)
	year = 100*b + d - 4800 + m/10
	return year, month, day
}

// FromCivil returns the Julian Date of the civil timestamp.
func FromCivil(year, month, day, hour, minute, second, nanosecond int) float64 {
	return float64(Number(year, month, day)) +
		float64(hour-12)/24 +
		float64(minute)/1440 +
		(float64(second)+float64(nanosecond)/float64(time.Second))/secondsPerDay
}

// FromTime returns the Julian Date of the wall-clock fields of t, in whatever location t carries. Convert t to the
// desired frame before calling FromTime.
func FromTime(t time.Time) float64 {
	return FromCivil(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// FromInstant returns the Julian Date of the instant t in UTC, independent of the location t carries.
func FromInstant(t time.Time) float64 {
	return FromTime(t.UTC())
}

// DayNumber returns the Julian Day Number of the civil date of t in whatever location t carries.
func DayNumber(t time.Time) int {
	return Number(t.Year(), int(t.Month()), t.Day())
}

// ToCivil converts a Julian Date back to a civil timestamp, rounded to the nearest second.
func ToCivil(jd float64) (year, month, day, hour, minute, second int) {
	shifted := jd + 0.5
	z := math.Floor(shifted)

	secs := int(math.Round((shifted - z) * secondsPerDay))
	if secs >= secondsPerDay {
		z++
		secs -= secondsPerDay
	}

	year, month, day = Civil(int(z))
	return year, month, day, secs / 3600, secs / 60 % 60, secs % 60
}

// ToTime converts a Julian Date to a UTC time.Time, rounded to the nearest second.
func ToTime(jd float64) time.Time {
	y, mo, d, h, mi, s := ToCivil(jd)
	return time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC)
}

// MJD returns the Modified Julian Date for the Julian Date.
func MJD(jd float64) float64 {
	return jd - MJDOffset
}

// NanosOfDay returns the nanoseconds elapsed since wall-clock midnight of t in the location t carries.
func NanosOfDay(t time.Time) int64 {
	return int64(t.Hour())*int64(time.Hour) +
		int64(t.Minute())*int64(time.Minute) +
		int64(t.Second())*int64(time.Second) +
		int64(t.Nanosecond())
}

// DayFraction returns the fraction of the wall-clock day of t that has elapsed, in [0, 1).
func DayFraction(t time.Time) float64 {
	return float64(NanosOfDay(t)) / float64(nanosPerDay)
}

// Mod is the Euclidean modulo, always in [0, n) for positive n. Calendar cycles use it to count backwards from their
// epoch.
func Mod(a, n int) int {
	return ((a % n) + n) % n
}

// FloorDiv divides rounding toward negative infinity, so FloorDiv(a, n)*n + Mod(a, n) == a.
func FloorDiv(a, n int) int {
	return (a - Mod(a, n)) / n
}

// Package timecode implements calendars that re-encode the current time through a fixed linear scale: decimal time,
// hexadecimal time, Swatch Internet Time, TNG stardates, Unix time, Julian Dates, NATO date-time groups and a plain
// world clock for a configured time zone.
//
// All of these are total functions of the instant. Digits are always extracted with floor division on integer
// nanosecond counts, so a value can never carry into a digit that does not exist (e.g. decimal second 100).
package timecode

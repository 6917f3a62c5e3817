// Package mesoamerica implements the Maya and Aztec calendars. Both are driven by the count of days since a
// correlation epoch and a handful of interlocking cycles (13, 20, 260 and 365 days), so every value is a modulo of
// the local civil Julian Day Number.
package mesoamerica

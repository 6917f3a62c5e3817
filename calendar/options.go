package calendar

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/nlowe/altcal/log"
)

// Options holds the DisplayOptions configured for a single calendar, as decoded from the configuration file. The
// typed getters never fail: a missing option silently yields the documented default, and an option that cannot be
// interpreted logs a warning and yields the default as well.
type Options map[string]any

var optionsLog = log.ForComponent("calendar.options")

func (o Options) invalid(key string, v any, fallback any) {
	optionsLog.With(
		slog.String("option", key),
		slog.String("value", fmt.Sprint(v)),
		slog.Any("default", fallback),
	).Warn("Invalid calendar option, using default")
}

// Bool returns the boolean option key, accepting YAML booleans and strconv.ParseBool strings.
func (o Options) Bool(key string, fallback bool) bool {
	v, ok := o[key]
	if !ok || v == nil {
		return fallback
	}

	switch b := v.(type) {
	case bool:
		return b
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed
		}
	}

	o.invalid(key, v, fallback)
	return fallback
}

// String returns the string option key.
func (o Options) String(key string, fallback string) string {
	v, ok := o[key]
	if !ok || v == nil {
		return fallback
	}

	if s, ok := v.(string); ok && s != "" {
		return s
	}

	o.invalid(key, v, fallback)
	return fallback
}

// Enum returns the string option key if it is one of allowed.
func (o Options) Enum(key string, fallback string, allowed ...string) string {
	s := o.String(key, fallback)
	if slices.Contains(allowed, s) {
		return s
	}

	o.invalid(key, s, fallback)
	return fallback
}

// Float returns the numeric option key as a float64.
func (o Options) Float(key string, fallback float64) float64 {
	v, ok := o[key]
	if !ok || v == nil {
		return fallback
	}

	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		if parsed, err := strconv.ParseFloat(n, 64); err == nil {
			return parsed
		}
	}

	o.invalid(key, v, fallback)
	return fallback
}

// Int returns the integer option key.
func (o Options) Int(key string, fallback int) int {
	v, ok := o[key]
	if !ok || v == nil {
		return fallback
	}

	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		if n == float64(int(n)) {
			return int(n)
		}
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed
		}
	}

	o.invalid(key, v, fallback)
	return fallback
}

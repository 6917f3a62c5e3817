package calendar

import "time"

// Clock supplies the current instant to calendar sensors.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system wall-clock in time.Local.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock implements Clock by always returning the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time {
	return c.T
}

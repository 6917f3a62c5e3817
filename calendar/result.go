package calendar

import (
	"errors"
	"fmt"
	"time"
)

const (
	// ErrorState is the state published by a calendar whose conversion failed.
	ErrorState = "Error"
	// ErrorKey is the attribute holding the failure message of an ErrorState result.
	ErrorKey = "error"
)

// ErrPanic wraps the value recovered from a converter that panicked.
var ErrPanic = errors.New("calendar: conversion panicked")

// Result is the outcome of a single conversion. It is produced fresh for every tick and is never mutated after being
// returned.
type Result struct {
	// State is the human-facing formatted date or time, published as the sensor state.
	State string

	// Attributes holds the structured breakdown of State (year, month, cycle positions, flags, ...).
	Attributes *Fields
}

// ErrorResult constructs the sentinel result for a failed conversion.
func ErrorResult(err error) Result {
	return Result{
		State:      ErrorState,
		Attributes: NewFields().Set(ErrorKey, err.Error()),
	}
}

// IsError reports whether r is the sentinel result produced for a failed conversion.
func (r Result) IsError() bool {
	_, ok := r.Attributes.Get(ErrorKey)
	return r.State == ErrorState && ok
}

// Safe evaluates c for the instant t. It never panics: a returned error or a recovered panic is converted into the
// ErrorResult sentinel, and the underlying fault is returned alongside it so the caller can log it. A successful
// conversion always carries non-nil Attributes.
func Safe(c Calendar, t time.Time) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
			res = ErrorResult(err)
		}
	}()

	if c == nil {
		err = errors.New("calendar: nil converter")
		return ErrorResult(err), err
	}

	res, err = c.Convert(t)
	if err != nil {
		return ErrorResult(err), err
	}

	if res.Attributes == nil {
		res.Attributes = NewFields()
	}

	return res, nil
}

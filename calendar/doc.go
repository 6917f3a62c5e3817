// Package calendar contains the contract shared by every alternative calendar converter. A converter implements
// Calendar by turning an instant into a Result: a formatted State string plus an ordered set of Attributes that are
// published to Home Assistant alongside the state.
//
// Converters are pure functions of the instant they are given. They hold only immutable definition data (name
// tables, epochs, resolved Options) that is fixed when the converter is constructed from its Descriptor. Use Safe to
// evaluate a converter: it turns any fault into the sentinel ErrorState result so a broken calendar never leaves a
// sensor without a state.
package calendar

// Package catalog lists every calendar altcal can publish.
package catalog

import (
	"slices"

	"github.com/nlowe/altcal/astro"
	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/lunisolar"
	"github.com/nlowe/altcal/mesoamerica"
	"github.com/nlowe/altcal/timecode"
	"github.com/nlowe/altcal/zoroastrian"
)

// Descriptors returns the descriptor of every known calendar, grouped by family.
func Descriptors() []calendar.Descriptor {
	return slices.Concat(
		timecode.Descriptors(),
		astro.Descriptors(),
		mesoamerica.Descriptors(),
		zoroastrian.Descriptors(),
		lunisolar.Descriptors(),
	)
}

// New returns a Registry of every known calendar.
func New() (*calendar.Registry, error) {
	return calendar.NewRegistry(Descriptors()...)
}

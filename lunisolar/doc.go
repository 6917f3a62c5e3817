// Package lunisolar implements calendars of the ancient Mediterranean and Gaul: the Coligny calendar, the Attic
// festival calendar, the Egyptian civil calendar of the Nabonassar era and Roman dating by Kalends, Nones and Ides.
package lunisolar

import "github.com/nlowe/altcal/calendar"

// names resolves entry i of a table that is never translated.
func names(table calendar.Names, i int) (string, error) {
	return table.At(calendar.DefaultLanguage, i)
}

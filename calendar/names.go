package calendar

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// ErrTableIndex is the error returned by Names.At when the requested entry does not exist in the resolved table.
var ErrTableIndex = errors.New("calendar: name table index out of range")

// DefaultLanguage is the last resort of every Names fallback chain. Untranslated tables are stored under it.
var DefaultLanguage = language.English

// Names holds immutable per-language name tables (month names, day signs, ...) keyed by BCP 47 language tag. Tables
// are resolved with an explicit fallback chain: the exact tag, then each of its parents, then its base language and
// finally English.
type Names map[string][]string

// Fixed constructs Names for a table that is not translated (Latin, Nahuatl, Avestan, ...).
func Fixed(values ...string) Names {
	return Names{DefaultLanguage.String(): values}
}

// For resolves the table to use for tag.
func (n Names) For(tag language.Tag) []string {
	for t := tag; !t.IsRoot(); t = t.Parent() {
		if v, ok := n[t.String()]; ok {
			return v
		}
	}

	if base, confidence := tag.Base(); confidence != language.No {
		if v, ok := n[base.String()]; ok {
			return v
		}
	}

	return n[DefaultLanguage.String()]
}

// At returns entry i of the table resolved for tag.
func (n Names) At(tag language.Tag, i int) (string, error) {
	table := n.For(tag)
	if i < 0 || i >= len(table) {
		return "", fmt.Errorf("%w: %d of %d", ErrTableIndex, i, len(table))
	}

	return table[i], nil
}

// Len returns the length of the table resolved for tag.
func (n Names) Len(tag language.Tag) int {
	return len(n.For(tag))
}

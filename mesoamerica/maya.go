package mesoamerica

import (
	"fmt"
	"time"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	// CorrelationGMT is the Goodman-Martinez-Thompson correlation: the Julian Day Number of Long Count 0.0.0.0.0.
	CorrelationGMT = 584283
	// CorrelationLounsbury is the Lounsbury variant, two days later.
	CorrelationLounsbury = 584285

	OrthographyClassic = "classic"
	OrthographyModern  = "modern"

	// wayebMonth is the index of the five unlucky days closing the Haab.
	wayebMonth = 18
)

var (
	TzolkinSigns = map[string]calendar.Names{
		OrthographyClassic: calendar.Fixed(
			"Imix", "Ik", "Akbal", "Kan", "Chicchan", "Cimi", "Manik", "Lamat", "Muluc", "Oc",
			"Chuen", "Eb", "Ben", "Ix", "Men", "Cib", "Caban", "Etznab", "Cauac", "Ahau",
		),
		OrthographyModern: calendar.Fixed(
			"Imix", "Ik'", "Ak'b'al", "K'an", "Chikchan", "Kimi", "Manik'", "Lamat", "Muluk", "Ok",
			"Chuwen", "Eb'", "B'en", "Ix", "Men", "K'ib'", "Kab'an", "Etz'nab'", "Kawak", "Ajaw",
		),
	}

	HaabMonths = map[string]calendar.Names{
		OrthographyClassic: calendar.Fixed(
			"Pop", "Uo", "Zip", "Zotz", "Tzec", "Xul", "Yaxkin", "Mol", "Chen", "Yax",
			"Zac", "Ceh", "Mac", "Kankin", "Muan", "Pax", "Kayab", "Cumku",
		),
		OrthographyModern: calendar.Fixed(
			"Pop", "Wo'", "Sip", "Sotz'", "Sek", "Xul", "Yaxk'in", "Mol", "Ch'en", "Yax",
			"Sak'", "Keh", "Mak", "K'ank'in", "Muwan", "Pax", "K'ayab", "Kumk'u",
		),
	}

	// Wayeb names the five days after the eighteen Haab months.
	Wayeb = map[string]string{
		OrthographyClassic: "Uayeb",
		OrthographyModern:  "Wayeb'",
	}
)

// LongCount is a Maya Long Count date.
type LongCount struct {
	Baktun, Katun, Tun, Uinal, Kin int
}

func (l LongCount) String() string {
	return fmt.Sprintf("%d.%d.%d.%d.%d", l.Baktun, l.Katun, l.Tun, l.Uinal, l.Kin)
}

// ToLongCount converts days elapsed since the correlation epoch to a Long Count.
func ToLongCount(days int) LongCount {
	return LongCount{
		Baktun: jd.FloorDiv(days, 144000),
		Katun:  jd.Mod(days, 144000) / 7200,
		Tun:    jd.Mod(days, 7200) / 360,
		Uinal:  jd.Mod(days, 360) / 20,
		Kin:    jd.Mod(days, 20),
	}
}

// Tzolkin returns the day number (1-13) and the 0-based day sign index of the 260-day count.
func Tzolkin(days int) (number, sign int) {
	return jd.Mod(days+3, 13) + 1, jd.Mod(days+19, 20)
}

// Haab returns the 0-based day and month of the 365-day count. Month 18 is the five day Wayeb.
func Haab(days int) (day, month int) {
	h := jd.Mod(days+348, 365)
	return h % 20, h / 20
}

// LordOfTheNight returns the index (1-9) of the Lord of the Night ruling the day.
func LordOfTheNight(days int) int {
	return jd.Mod(days+8, 9) + 1
}

// Maya is the Maya calendar round and Long Count for the local civil date.
type Maya struct {
	Correlation int
	Orthography string
}

// NewMaya constructs Maya from its options.
func NewMaya(opts calendar.Options) Maya {
	correlation := CorrelationGMT
	if opts.Enum("correlation", "gmt", "gmt", "lounsbury") == "lounsbury" {
		correlation = CorrelationLounsbury
	}

	return Maya{
		Correlation: correlation,
		Orthography: opts.Enum("orthography", OrthographyClassic, OrthographyClassic, OrthographyModern),
	}
}

func (m Maya) Convert(t time.Time) (calendar.Result, error) {
	days := jd.DayNumber(t) - m.Correlation
	lc := ToLongCount(days)

	number, signIndex := Tzolkin(days)
	sign, err := TzolkinSigns[m.Orthography].At(calendar.DefaultLanguage, signIndex)
	if err != nil {
		return calendar.Result{}, fmt.Errorf("tzolk'in: %w", err)
	}

	haabDay, haabMonth := Haab(days)

	var haab string
	if haabMonth == wayebMonth {
		haab = fmt.Sprintf("%d %s", haabDay, Wayeb[m.Orthography])
	} else {
		month, err := HaabMonths[m.Orthography].At(calendar.DefaultLanguage, haabMonth)
		if err != nil {
			return calendar.Result{}, fmt.Errorf("haab: %w", err)
		}

		haab = fmt.Sprintf("%d %s", haabDay, month)
	}

	tzolkin := fmt.Sprintf("%d %s", number, sign)
	lord := fmt.Sprintf("G%d", LordOfTheNight(days))

	attrs := calendar.NewFields().
		Set("long_count", lc.String()).
		Set("baktun", lc.Baktun).
		Set("katun", lc.Katun).
		Set("tun", lc.Tun).
		Set("uinal", lc.Uinal).
		Set("kin", lc.Kin).
		Set("tzolkin", tzolkin).
		Set("haab", haab).
		Set("lord_of_the_night", lord).
		Set("days_since_epoch", days)

	if haabMonth == wayebMonth {
		attrs.Set("wayeb", true).Set("wayeb_day", haabDay+1)
	} else {
		attrs.Set("wayeb", false)
	}

	return calendar.Result{
		State:      fmt.Sprintf("%s %s %s", lc, tzolkin, haab),
		Attributes: attrs,
	}, nil
}

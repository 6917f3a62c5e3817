package mesoamerica

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/nlowe/altcal/calendar"
	"github.com/nlowe/altcal/jd"
)

const (
	AztecFormatFull          = "full"
	AztecFormatTonalpohualli = "tonalpohualli"
	AztecFormatXiuhpohualli  = "xiuhpohualli"
	AztecFormatYear          = "year"

	// Fall of Tenochtitlan (Caso correlation): 1 Coatl, 2 Xocotlhuetzi, year 3 Calli.
	aztecEpochSign          = 4
	aztecEpochDayOfYear     = 9*20 + 1
	aztecEpochCyclePosition = 16

	nemontemiStart = 360
)

// AztecEpoch is the Julian Day Number of 13 August 1521 (Julian calendar).
var AztecEpoch = jd.JulianNumber(1521, 8, 13)

var (
	AztecDaySigns = calendar.Fixed(
		"Cipactli", "Ehecatl", "Calli", "Cuetzpalin", "Coatl", "Miquiztli", "Mazatl", "Tochtli", "Atl", "Itzcuintli",
		"Ozomatli", "Malinalli", "Acatl", "Ocelotl", "Cuauhtli", "Cozcacuauhtli", "Ollin", "Tecpatl", "Quiahuitl", "Xochitl",
	)

	// AztecDaySignMeanings is indexed like AztecDaySigns.
	AztecDaySignMeanings = calendar.Names{
		"en": {
			"Crocodile", "Wind", "House", "Lizard", "Serpent", "Death", "Deer", "Rabbit", "Water", "Dog",
			"Monkey", "Grass", "Reed", "Jaguar", "Eagle", "Vulture", "Movement", "Flint", "Rain", "Flower",
		},
		"es": {
			"Cocodrilo", "Viento", "Casa", "Lagartija", "Serpiente", "Muerte", "Venado", "Conejo", "Agua", "Perro",
			"Mono", "Hierba", "Caña", "Jaguar", "Águila", "Zopilote", "Movimiento", "Pedernal", "Lluvia", "Flor",
		},
		"de": {
			"Krokodil", "Wind", "Haus", "Eidechse", "Schlange", "Tod", "Hirsch", "Kaninchen", "Wasser", "Hund",
			"Affe", "Gras", "Rohr", "Jaguar", "Adler", "Geier", "Bewegung", "Feuerstein", "Regen", "Blume",
		},
	}

	AztecMonths = calendar.Fixed(
		"Atlcahualo", "Tlacaxipehualiztli", "Tozoztontli", "Huey Tozoztli", "Toxcatl", "Etzalcualiztli",
		"Tecuilhuitontli", "Huey Tecuilhuitl", "Tlaxochimaco", "Xocotlhuetzi", "Ochpaniztli", "Teotleco",
		"Tepeilhuitl", "Quecholli", "Panquetzaliztli", "Atemoztli", "Tititl", "Izcalli",
	)

	// YearBearers are the four day signs that can name a year, indexes into AztecDaySigns.
	YearBearers = [4]int{7, 12, 17, 2}
)

// AztecDate is a position in the Aztec calendar round.
type AztecDate struct {
	// Number (1-13) and Sign (index into AztecDaySigns) of the 260-day Tonalpohualli.
	Number, Sign int

	// DayOfYear is the 0-based day of the 365-day Xiuhpohualli. Days from 360 are the nemontemi.
	DayOfYear int

	// CyclePosition is the year's position (1-52) in the calendar round.
	CyclePosition int
}

// ToAztec converts a Julian Day Number to its Aztec calendar round position.
func ToAztec(jdn int) AztecDate {
	offset := jdn - AztecEpoch
	year := aztecEpochDayOfYear + offset

	return AztecDate{
		Number:        jd.Mod(offset, 13) + 1,
		Sign:          jd.Mod(aztecEpochSign+offset, 20),
		DayOfYear:     jd.Mod(year, 365),
		CyclePosition: jd.Mod(aztecEpochCyclePosition-1+jd.FloorDiv(year, 365), 52) + 1,
	}
}

// Nemontemi reports whether the day falls in the five nameless days closing the year.
func (a AztecDate) Nemontemi() bool {
	return a.DayOfYear >= nemontemiStart
}

// YearNumber returns the number (1-13) of the year.
func (a AztecDate) YearNumber() int {
	return (a.CyclePosition-1)%13 + 1
}

// YearBearer returns the index into AztecDaySigns of the sign naming the year.
func (a AztecDate) YearBearer() int {
	return YearBearers[(a.CyclePosition-1)%4]
}

// Aztec is the Aztec calendar round for the local civil date. State names are in Nahuatl, translations of the day
// sign are published as attributes.
type Aztec struct {
	Format string
	Lang   language.Tag
}

// NewAztec constructs Aztec from its options.
func NewAztec(opts calendar.Options, lang language.Tag) Aztec {
	return Aztec{
		Format: opts.Enum("format", AztecFormatFull,
			AztecFormatFull, AztecFormatTonalpohualli, AztecFormatXiuhpohualli, AztecFormatYear,
		),
		Lang: lang,
	}
}

func (a Aztec) Convert(t time.Time) (calendar.Result, error) {
	date := ToAztec(jd.DayNumber(t))

	sign, err := AztecDaySigns.At(calendar.DefaultLanguage, date.Sign)
	if err != nil {
		return calendar.Result{}, err
	}

	meaning, err := AztecDaySignMeanings.At(a.Lang, date.Sign)
	if err != nil {
		return calendar.Result{}, err
	}

	bearer, err := AztecDaySigns.At(calendar.DefaultLanguage, date.YearBearer())
	if err != nil {
		return calendar.Result{}, err
	}

	var xiuhpohualli string
	if date.Nemontemi() {
		xiuhpohualli = fmt.Sprintf("%d Nemontemi", date.DayOfYear-nemontemiStart+1)
	} else {
		month, err := AztecMonths.At(calendar.DefaultLanguage, date.DayOfYear/20)
		if err != nil {
			return calendar.Result{}, err
		}

		xiuhpohualli = fmt.Sprintf("%d %s", date.DayOfYear%20+1, month)
	}

	tonalpohualli := fmt.Sprintf("%d %s", date.Number, sign)
	year := fmt.Sprintf("%d %s", date.YearNumber(), bearer)

	var state string
	switch a.Format {
	case AztecFormatTonalpohualli:
		state = tonalpohualli
	case AztecFormatXiuhpohualli:
		state = xiuhpohualli
	case AztecFormatYear:
		state = year
	default:
		state = fmt.Sprintf("%s, %s, %s", tonalpohualli, xiuhpohualli, year)
	}

	return calendar.Result{
		State: state,
		Attributes: calendar.NewFields().
			Set("tonalpohualli", tonalpohualli).
			Set("day_sign_meaning", meaning).
			Set("xiuhpohualli", xiuhpohualli).
			Set("nemontemi", date.Nemontemi()).
			Set("year", year).
			Set("cycle_position", date.CyclePosition).
			Set("new_fire", date.CyclePosition == 52),
	}, nil
}

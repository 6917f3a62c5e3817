package astro

import "github.com/nlowe/altcal/calendar"

var (
	// PlanetNames is indexed like Planets.
	PlanetNames = calendar.Names{
		"en": {"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"},
		"de": {"Merkur", "Venus", "Erde", "Mars", "Jupiter", "Saturn", "Uranus", "Neptun"},
		"fr": {"Mercure", "Vénus", "Terre", "Mars", "Jupiter", "Saturne", "Uranus", "Neptune"},
		"es": {"Mercurio", "Venus", "Tierra", "Marte", "Júpiter", "Saturno", "Urano", "Neptuno"},
	}

	ZodiacGlyphs = calendar.Fixed("♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓")
	ZodiacNames  = calendar.Names{
		"en": {"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo", "Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces"},
		"de": {"Widder", "Stier", "Zwillinge", "Krebs", "Löwe", "Jungfrau", "Waage", "Skorpion", "Schütze", "Steinbock", "Wassermann", "Fische"},
		"fr": {"Bélier", "Taureau", "Gémeaux", "Cancer", "Lion", "Vierge", "Balance", "Scorpion", "Sagittaire", "Capricorne", "Verseau", "Poissons"},
		"es": {"Aries", "Tauro", "Géminis", "Cáncer", "Leo", "Virgo", "Libra", "Escorpio", "Sagitario", "Capricornio", "Acuario", "Piscis"},
	}

	// SuperiorEvents is indexed like the events returned by Planet.Events for planets outside Earth's orbit.
	SuperiorEvents = calendar.Names{
		"en": {"Opposition", "Eastern quadrature", "Conjunction", "Western quadrature"},
		"de": {"Opposition", "Östliche Quadratur", "Konjunktion", "Westliche Quadratur"},
		"fr": {"Opposition", "Quadrature orientale", "Conjonction", "Quadrature occidentale"},
		"es": {"Oposición", "Cuadratura oriental", "Conjunción", "Cuadratura occidental"},
	}

	// InferiorEvents is indexed like the events returned by Planet.Events for planets inside Earth's orbit.
	InferiorEvents = calendar.Names{
		"en": {"Inferior conjunction", "Greatest western elongation", "Superior conjunction", "Greatest eastern elongation"},
		"de": {"Untere Konjunktion", "Größte westliche Elongation", "Obere Konjunktion", "Größte östliche Elongation"},
		"fr": {"Conjonction inférieure", "Plus grande élongation ouest", "Conjonction supérieure", "Plus grande élongation est"},
		"es": {"Conjunción inferior", "Máxima elongación occidental", "Conjunción superior", "Máxima elongación oriental"},
	}
)

// Package astro implements calendars derived from mean planetary motion: Mars time and the Darian calendar, synodic
// cycles of the planets as seen from Earth and the heliocentric positions of the whole solar system.
//
// Everything here uses mean orbital elements. The results are plausible to within a degree or so for a few centuries
// around J2000, which is enough for a sensor but not for navigation.
package astro

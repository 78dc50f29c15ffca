// Package ephemeris computes the positions of the Sun, Earth, and Moon
// per spec.md §4.D: a fixed heliocentric origin for the Sun, a low-order
// polynomial series for Earth (grounded on original_source/src/bodies.rs'
// port of the standard low-precision solar position algorithm), and
// Keplerian elements plus a short lunar perturbation series for the Moon.
package ephemeris

import (
	"log"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"

	"orbitsim/internal/degtrig"
	"orbitsim/internal/kepler"
	"orbitsim/internal/vector"
)

// AU is meters per astronomical unit, spec.md §6's
// METERS_PER_ASTRONOMICAL_UNIT.
const AU = 1.4959787e11

// GravitationalConstant is spec.md §6's G, in SI units.
const GravitationalConstant = 6.674e-11

// earthRadiiPerAU is the EARTH_RADII_PER_ASTRONOMICAL_UNIT constant
// spec.md §4.D uses to convert the Moon's semi-major axis from Earth
// radii into AU. It is derived from a slightly different Earth radius
// figure than SolarBodyKind.RadiusMeters()'s physical value — both
// appear, distinctly, in original_source/src/bodies.rs.
const earthRadiiPerAU = AU / 6.378140e6

// SolarBodyKind identifies one of the three ephemeris bodies.
type SolarBodyKind int

const (
	Sun SolarBodyKind = iota
	Earth
	Moon
)

func (k SolarBodyKind) String() string {
	switch k {
	case Sun:
		return "Sun"
	case Earth:
		return "Earth"
	case Moon:
		return "Moon"
	default:
		return "Unknown"
	}
}

var radiusMeters = [...]float64{
	Sun:   6.957e8,
	Earth: 6.3781e6,
	Moon:  1.7381e6,
}

var massKg = [...]float64{
	Sun:   1.9891e30,
	Earth: 5.9722e24,
	Moon:  7.346e22,
}

// RadiusMeters returns k's frozen physical radius, spec.md §6.
func (k SolarBodyKind) RadiusMeters() float64 { return radiusMeters[k] }

// MassKg returns k's frozen mass, spec.md §6.
func (k SolarBodyKind) MassKg() float64 { return massKg[k] }

// CartesianCoords is a frame-tagged position: which units it is expressed
// in and whether it is heliocentric or geocentric. Conversions are
// explicit and idempotent rather than mutating a position in place — the
// redesign spec.md §9 calls for in place of the original's mutable
// boolean-tagged vector.
type CartesianCoords struct {
	Vec          vector.Vector3
	InMeters     bool
	Heliocentric bool
}

func auCoords(v vector.Vector3, heliocentric bool) CartesianCoords {
	return CartesianCoords{Vec: v, InMeters: false, Heliocentric: heliocentric}
}

// ToMeters returns c converted to meters; a no-op if c is already in
// meters.
func (c CartesianCoords) ToMeters() CartesianCoords {
	if c.InMeters {
		return c
	}
	return CartesianCoords{Vec: vector.MulScalar(c.Vec, AU), InMeters: true, Heliocentric: c.Heliocentric}
}

// ToAU returns c converted to astronomical units; a no-op if c already is.
func (c CartesianCoords) ToAU() CartesianCoords {
	if !c.InMeters {
		return c
	}
	return CartesianCoords{Vec: vector.MulScalar(c.Vec, 1/AU), InMeters: false, Heliocentric: c.Heliocentric}
}

// KeplerElements holds the Moon's orbital elements at epoch plus their
// per-day rates, spec.md §4.D. The epoch values are unit.Angle the way
// internal/d2solver/cliperr.go tags a degree quantity as unit.Angle
// rather than a bare float64; the per-day rates aren't angles in their
// own right, so they stay plain float64.
type KeplerElements struct {
	N0   unit.Angle // longitude of ascending node
	Ndot float64    // deg/day
	I0   unit.Angle // inclination
	Idot float64    // deg/day
	W0   unit.Angle // argument of perihelion
	Wdot float64    // deg/day
	A0   float64    // semi-major axis, AU
	Adot float64    // AU/day
	E0   float64    // eccentricity
	Edot float64    // per day
	M0   unit.Angle // mean anomaly
	Mdot float64    // deg/day
}

// at evaluates el's elements at the given day, returning plain-float64
// degrees/AU the way soniakeys/meeus converts a unit.Angle to radians
// once via .Rad() before a tight trigonometric loop rather than carrying
// the wrapper type through the arithmetic.
func (el KeplerElements) at(day float64) (n, i, w, a, e, m float64) {
	n = el.N0.Deg() + el.Ndot*day
	i = el.I0.Deg() + el.Idot*day
	w = el.W0.Deg() + el.Wdot*day
	a = el.A0 + el.Adot*day
	e = el.E0 + el.Edot*day
	m = el.M0.Deg() + el.Mdot*day
	return
}

func moonElements() KeplerElements {
	return KeplerElements{
		N0: unit.AngleFromDeg(125.1228), Ndot: -0.0529538083,
		I0: unit.AngleFromDeg(5.1454), Idot: 0.0,
		W0: unit.AngleFromDeg(318.0634), Wdot: 0.1643573223,
		A0: 60.2666 / earthRadiiPerAU, Adot: 0.0,
		E0: 0.054900, Edot: 0.0,
		M0: unit.AngleFromDeg(115.3654), Mdot: 13.0649929509,
	}
}

// EphemerisBody is one positioned Sun/Earth/Moon entry.
type EphemerisBody struct {
	Kind     SolarBodyKind
	Coords   CartesianCoords
	elements KeplerElements // only meaningful for Moon
}

// NewBody constructs kind's ephemeris entry at epochDay.
func NewBody(kind SolarBodyKind, epochDay float64) EphemerisBody {
	switch kind {
	case Sun:
		return EphemerisBody{Kind: Sun, Coords: sunPosition()}
	case Earth:
		return EphemerisBody{Kind: Earth, Coords: earthPosition(epochDay)}
	case Moon:
		el := moonElements()
		return EphemerisBody{Kind: Moon, Coords: moonPosition(el, epochDay), elements: el}
	default:
		panic("ephemeris: unknown solar body kind")
	}
}

// Refresh recomputes b's position at day, preserving its Kepler elements
// for the Moon.
func (b *EphemerisBody) Refresh(day float64) {
	switch b.Kind {
	case Sun:
		b.Coords = sunPosition()
	case Earth:
		b.Coords = earthPosition(day)
	case Moon:
		b.Coords = moonPosition(b.elements, day)
	}
}

// sunPosition is fixed at the heliocentric origin.
func sunPosition() CartesianCoords {
	return auCoords(vector.Vector3{}, true)
}

// earthPosition evaluates the low-order heliocentric series spec.md
// §4.D gives for the Earth: mean longitude L0, mean anomaly M0, equation
// of center C, true longitude, eccentricity, and orbital radius.
func earthPosition(day float64) CartesianCoords {
	t := (day - 1.5) / 36525

	l0 := degtrig.Norm360(base.Horner(t, 280.46645, 36000.76983, 0.0003032))
	m0 := degtrig.Norm360(base.Horner(t, 357.52910, 35999.05030, -0.0001559, -4.8e-7))

	c := (1.914600-0.004817*t-0.000014*t*t)*degtrig.Sin(m0) +
		(0.019993-0.000101*t)*degtrig.Sin(2*m0) +
		0.000290*degtrig.Sin(3*m0)

	trueLongitude := l0 + c
	e := 0.016708617 - t*(0.000042037+0.0000001236*t)
	r := 1.000001018 * (1 - e*e) / (1 + e*degtrig.Cos(m0+c))

	x := -r * degtrig.Cos(trueLongitude)
	y := -r * degtrig.Sin(trueLongitude)

	return auCoords(vector.Vector3{X: x, Y: y, Z: 0}, true)
}

// moonPosition evaluates the Moon's geocentric position: solve Kepler's
// equation for the eccentric anomaly, derive the orbital-plane position,
// rotate it into the ecliptic, then apply the short lunar perturbation
// series.
func moonPosition(el KeplerElements, day float64) CartesianCoords {
	n, i, w, a, e, m := el.at(day)

	ecc, err := kepler.Solve(m, e)
	if err != nil {
		log.Printf("ephemeris: %v", err)
	}

	xv := a * (degtrig.Cos(ecc) - e)
	yv := a * math.Sqrt(1-e*e) * degtrig.Sin(ecc)

	v := degtrig.Atan2(yv, xv)
	r := math.Hypot(xv, yv)

	cosN, sinN := degtrig.Sincos(n)
	cosI, sinI := degtrig.Sincos(i)
	sinVW, cosVW := degtrig.Sincos(v + w)

	xh := r * (cosN*cosVW - sinN*sinVW*cosI)
	yh := r * (sinN*cosVW + cosN*sinVW*cosI)
	zh := r * sinVW * sinI

	xh, yh, zh = applyLunarPerturbation(xh, yh, zh, m, w, n, day)

	return auCoords(vector.Vector3{X: xh, Y: yh, Z: zh}, false)
}

// applyLunarPerturbation adds the short evection/variation/yearly-equation
// series spec.md §4.D lists, expressed in ecliptic longitude, latitude,
// and radius.
func applyLunarPerturbation(xh, yh, zh, mm, wm, nm, day float64) (float64, float64, float64) {
	ms := 356.0470 + 0.9856002585*day
	ws := 282.9404 + 4.70935e-5*day
	ls := ms + ws
	lm := mm + wm + nm
	d := lm - ls
	f := lm - nm

	deltaLon := -1.274*degtrig.Sin(mm-2*d) +
		0.658*degtrig.Sin(2*d) -
		0.186*degtrig.Sin(ms) -
		0.059*degtrig.Sin(2*mm-2*d) -
		0.057*degtrig.Sin(mm-2*d+ms) +
		0.053*degtrig.Sin(mm+2*d) +
		0.046*degtrig.Sin(2*d-ms) +
		0.041*degtrig.Sin(mm-ms) -
		0.035*degtrig.Sin(d) -
		0.031*degtrig.Sin(mm+ms) -
		0.015*degtrig.Sin(2*f-2*d) +
		0.011*degtrig.Sin(mm-4*d)

	deltaLat := -0.173*degtrig.Sin(f-2*d) -
		0.055*degtrig.Sin(mm-f-2*d) -
		0.046*degtrig.Sin(mm+f-2*d) +
		0.033*degtrig.Sin(f+2*d) +
		0.017*degtrig.Sin(2*mm+f)

	deltaRadiusEarthRadii := -0.58*degtrig.Cos(mm-2*d) - 0.46*degtrig.Cos(2*d)

	lon := degtrig.Atan2(yh, xh) + deltaLon
	lat := degtrig.Atan2(zh, math.Hypot(xh, yh)) + deltaLat
	r := math.Sqrt(xh*xh+yh*yh+zh*zh) + deltaRadiusEarthRadii/earthRadiiPerAU

	sinLon, cosLon := degtrig.Sincos(lon)
	sinLat, cosLat := degtrig.Sincos(lat)

	return r * cosLon * cosLat, r * sinLon * cosLat, r * sinLat
}

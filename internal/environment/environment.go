// Package environment models spec.md §3's Environment: the simulation
// clock plus the ephemeris bodies it was last refreshed at, and the
// geocentric distance vectors the perturbation engine needs from them.
package environment

import (
	"orbitsim/internal/ephemeris"
	"orbitsim/internal/vector"
)

// CentricIndex is the position, within the fixed {Sun, Earth, Moon}
// construction order, of the body small-body coordinates are referenced
// against (Earth). spec.md's prose calls the centric body "index 0" in
// several places while its Invariants section requires the canonical
// storage order {Sun, Earth, Moon} (Sun first) — two statements that
// can't both be literally true at once. This package resolves the
// conflict by keeping the canonical storage order and exposing the
// centric position through this named accessor rather than hardcoding
// the literal 0 anywhere a "which body is centric" decision is made; see
// DESIGN.md for the full reasoning.
const CentricIndex = 1

// Environment holds the simulation clock and the ephemeris positions it
// was last refreshed at.
type Environment struct {
	Day              float64 // days since J2000.0, fractional
	SimTimeS         float64
	LastSolarUpdateS float64

	bodies       []ephemeris.EphemerisBody
	bodiesMeters []vector.Vector3 // same order as bodies, AU coords converted to meters
}

// New constructs the ephemeris at epochDay with the simulation clock
// zeroed.
func New(epochDay float64) *Environment {
	env := &Environment{
		Day: epochDay,
		bodies: []ephemeris.EphemerisBody{
			ephemeris.NewBody(ephemeris.Sun, epochDay),
			ephemeris.NewBody(ephemeris.Earth, epochDay),
			ephemeris.NewBody(ephemeris.Moon, epochDay),
		},
	}
	env.cacheMeters()
	return env
}

func (e *Environment) cacheMeters() {
	e.bodiesMeters = make([]vector.Vector3, len(e.bodies))
	for i, b := range e.bodies {
		e.bodiesMeters[i] = b.Coords.ToMeters().Vec
	}
}

// Refresh re-evaluates every ephemeris body at e.Day and records the
// simulation time of this refresh.
func (e *Environment) Refresh() {
	for i := range e.bodies {
		e.bodies[i].Refresh(e.Day)
	}
	e.cacheMeters()
	e.LastSolarUpdateS = e.SimTimeS
}

// SetDay advances the day value the next Refresh will evaluate at.
func (e *Environment) SetDay(day float64) { e.Day = day }

// Bodies returns the ordered ephemeris bodies, Sun first.
func (e *Environment) Bodies() []ephemeris.EphemerisBody { return e.bodies }

// geocentricMeters returns the idx'th ephemeris body's position in the
// centric (geocentric) frame, in meters, converting from heliocentric
// storage on demand rather than maintaining both representations
// permanently.
func (e *Environment) geocentricMeters(idx int) vector.Vector3 {
	if idx == CentricIndex {
		return vector.Vector3{}
	}
	if e.bodies[idx].Coords.Heliocentric {
		return vector.Sub(e.bodiesMeters[idx], e.bodiesMeters[CentricIndex])
	}
	return e.bodiesMeters[idx]
}

// CentricToBody returns the vector, in meters, from the centric body to
// the ephemeris body at idx — the differential term the centric
// correction in internal/perturb needs.
func (e *Environment) CentricToBody(idx int) vector.Vector3 {
	return e.geocentricMeters(idx)
}

// DistanceTo returns the vector, in meters, from a small body at
// smallBodyPos (geocentric) to the ephemeris body at idx.
func (e *Environment) DistanceTo(smallBodyPos vector.Vector3, idx int) vector.Vector3 {
	return vector.Sub(e.geocentricMeters(idx), smallBodyPos)
}

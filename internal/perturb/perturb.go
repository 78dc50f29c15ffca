// Package perturb computes, for one small body and one simulation tick,
// the gravitational acceleration contributed by each ephemeris body and
// advances the body's position and velocity with symplectic-Euler
// integration — spec.md §4.F. This is deliberately not upgraded to a
// higher-order integrator (RK4, Verlet); spec.md §9 calls that out as an
// acknowledged limitation, not a gap to close here.
package perturb

import (
	"fmt"

	"orbitsim/internal/environment"
	"orbitsim/internal/simerr"
	"orbitsim/internal/vector"
)

// GravitationalConstant is spec.md §6's G, in SI units.
const GravitationalConstant = 6.674e-11

// coincidentThreshold is the minimum distance, in meters, allowed
// between a small body and an ephemeris body before the step fails.
const coincidentThreshold = 1.0

// Record is one ephemeris body's acceleration contribution to a small
// body over one tick.
type Record struct {
	SimTimeS float64
	Kind     string // e.g. "solar_obj_Sun", or "solar_obj_combined" for the summed contribution
	Accel    vector.Vector3
}

// Step computes the acceleration contributed by every ephemeris body in
// env against the small body at pos/vel, applies the centric
// differential correction to every non-centric body (SPEC_FULL.md §4), and
// advances pos/vel by dt using symplectic-Euler integration (velocity
// updated before position, per spec.md §4.F).
//
// It returns the new position and velocity, one Record per ephemeris
// body, the summed Record across all of them, and a non-nil error of
// kind simerr.CoincidentBodies if bodyID comes within coincidentThreshold
// meters of any ephemeris body.
func Step(env *environment.Environment, bodyID uint32, pos, vel vector.Vector3, dt float64) (newPos, newVel vector.Vector3, perBody []Record, summed Record, err error) {
	bodies := env.Bodies()
	perBody = make([]Record, 0, len(bodies))
	var total vector.Vector3

	for k, body := range bodies {
		d := env.DistanceTo(pos, k)
		dist := vector.Norm2(d)
		if dist < coincidentThreshold {
			return pos, vel, nil, Record{}, simerr.New(simerr.CoincidentBodies,
				fmt.Sprintf("small body %d and solar object %s are coincident (|d|=%.3g m)", bodyID, body.Kind, dist))
		}
		dir, _ := vector.Normalize(d, dist)
		accel := vector.MulScalar(dir, -GravitationalConstant*body.Kind.MassKg()/(dist*dist))

		if k != environment.CentricIndex {
			dc := env.CentricToBody(k)
			distC := vector.Norm2(dc)
			dirC, _ := vector.Normalize(dc, distC)
			centricAccel := vector.MulScalar(dirC, -GravitationalConstant*body.Kind.MassKg()/(distC*distC))
			accel = vector.Sub(accel, centricAccel)
		}

		total = vector.Add(total, accel)
		perBody = append(perBody, Record{SimTimeS: env.SimTimeS, Kind: "solar_obj_" + body.Kind.String(), Accel: accel})
	}

	summed = Record{SimTimeS: env.SimTimeS, Kind: "solar_obj_combined", Accel: total}

	newVel = vector.Add(vel, vector.MulScalar(total, dt))
	newPos = vector.Add(pos, vector.MulScalar(newVel, dt))
	return newPos, newVel, perBody, summed, nil
}

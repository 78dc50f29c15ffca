// Package kepler solves Kepler's equation
//
//	M = E - (180/pi)*e*sin(E)
//
// for the eccentric anomaly E, given the mean anomaly M in degrees and the
// dimensionless eccentricity e — the Newton iteration spec.md §4.C specifies for
// the Moon's elliptical orbit.
package kepler

import (
	"math"

	"orbitsim/internal/degtrig"
	"orbitsim/internal/simerr"
)

const (
	tolerance     = 1e-2
	maxIterations = 64
)

// Solve iterates Newton's method from the seed
//
//	E0 = M + e*sin(M)*(1 + e*cos(M))
//
// until successive iterates differ by less than 1e-2 degrees. If the
// iteration cap is reached first, Solve returns its last iterate
// alongside a non-nil *simerr.Error of kind simerr.KeplerNonConvergence —
// callers treat this as a warning and proceed with the returned value
// rather than aborting the run.
func Solve(m, e float64) (float64, error) {
	ecc := m + e*degtrig.Sin(m)*(1+e*degtrig.Cos(m))
	for i := 0; i < maxIterations; i++ {
		sinE, cosE := degtrig.Sincos(ecc)
		next := ecc - (ecc-degtrig.Rad2Deg*e*sinE-m)/(1-e*cosE)
		if math.Abs(next-ecc) < tolerance {
			return next, nil
		}
		ecc = next
	}
	return ecc, simerr.New(simerr.KeplerNonConvergence, "kepler solver did not converge within 64 iterations")
}

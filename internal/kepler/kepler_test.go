package kepler

import (
	"math"
	"testing"

	"orbitsim/internal/degtrig"
	"orbitsim/internal/simerr"
)

func TestSolveCircularOrbit(t *testing.T) {
	// e=0 means E=M exactly, on the very first iterate.
	got, err := Solve(42, 0)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if math.Abs(got-42) > tolerance {
		t.Errorf("Solve(42, 0) = %v, want ~42", got)
	}
}

func TestSolveSatisfiesKeplerEquation(t *testing.T) {
	m, e := 115.3654, 0.054900
	ecc, err := Solve(m, e)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	recoveredM := ecc - degtrig.Rad2Deg*e*degtrig.Sin(ecc)
	if math.Abs(recoveredM-m) > tolerance {
		t.Errorf("recovered M = %v, want %v (E=%v)", recoveredM, m, ecc)
	}
}

func TestSolveNonConvergenceIsNonFatal(t *testing.T) {
	// At e=0.99 and M=14, Newton's iteration does not tighten below
	// tolerance in 64 steps; Solve still returns a usable iterate.
	ecc, err := Solve(14, 0.99)
	if err != nil {
		var serr *simerr.Error
		if !asSimErr(err, &serr) || serr.Kind != simerr.KeplerNonConvergence {
			t.Fatalf("Solve() error = %v, want KeplerNonConvergence or nil", err)
		}
	}
	if math.IsNaN(ecc) {
		t.Error("Solve() returned NaN")
	}
}

func asSimErr(err error, target **simerr.Error) bool {
	if e, ok := err.(*simerr.Error); ok {
		*target = e
		return true
	}
	return false
}

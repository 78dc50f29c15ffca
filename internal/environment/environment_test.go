package environment

import (
	"math"
	"testing"

	"orbitsim/internal/ephemeris"
	"orbitsim/internal/vector"
)

func TestDistanceToEarthAtOriginIsZero(t *testing.T) {
	env := New(0)
	d := env.DistanceTo(vector.Vector3{}, CentricIndex)
	if d.X != 0 || d.Y != 0 || d.Z != 0 {
		t.Errorf("DistanceTo(origin, Earth) = %+v, want zero", d)
	}
}

func TestDistanceToEarthIsNegativeOfPosition(t *testing.T) {
	env := New(0)
	pos := vector.Vector3{X: 1e6, Y: -2e6, Z: 3e5}
	got := env.DistanceTo(pos, CentricIndex)
	want := vector.MulScalar(pos, -1)
	if got != want {
		t.Errorf("DistanceTo(pos, Earth) = %+v, want %+v", got, want)
	}
}

func TestDistanceToSunIsRoughlyOneAU(t *testing.T) {
	env := New(0)
	d := env.DistanceTo(vector.Vector3{}, int(ephemeris.Sun))
	r := math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
	if r < 0.98*ephemeris.AU || r > 1.02*ephemeris.AU {
		t.Errorf("distance to Sun = %v m, want ~1 AU", r)
	}
}

func TestRefreshAdvancesEphemeris(t *testing.T) {
	env := New(0)
	before := env.DistanceTo(vector.Vector3{}, int(ephemeris.Moon))
	env.SetDay(30)
	env.Refresh()
	after := env.DistanceTo(vector.Vector3{}, int(ephemeris.Moon))
	if before == after {
		t.Error("Refresh() after SetDay(30) left the Moon's distance unchanged")
	}
	if env.LastSolarUpdateS != env.SimTimeS {
		t.Errorf("LastSolarUpdateS = %v, want %v", env.LastSolarUpdateS, env.SimTimeS)
	}
}

package ephemeris

import (
	"math"
	"testing"
)

func TestSunIsFixedAtHeliocentricOrigin(t *testing.T) {
	b := NewBody(Sun, 1234.5)
	if b.Coords.Vec.X != 0 || b.Coords.Vec.Y != 0 || b.Coords.Vec.Z != 0 {
		t.Errorf("Sun position = %+v, want origin", b.Coords.Vec)
	}
	if !b.Coords.Heliocentric {
		t.Error("Sun coords should be heliocentric")
	}
}

func TestEarthOrbitalRadiusIsNearOneAU(t *testing.T) {
	b := NewBody(Earth, 0)
	r := math.Hypot(b.Coords.Vec.X, b.Coords.Vec.Y)
	if r < 0.98 || r > 1.02 {
		t.Errorf("Earth orbital radius = %v AU, want ~1", r)
	}
	if !b.Coords.Heliocentric {
		t.Error("Earth coords should be heliocentric")
	}
}

func TestMoonDistanceIsWithinLunarRange(t *testing.T) {
	b := NewBody(Moon, 0)
	rMeters := math.Sqrt(b.Coords.Vec.X*b.Coords.Vec.X+b.Coords.Vec.Y*b.Coords.Vec.Y+b.Coords.Vec.Z*b.Coords.Vec.Z) * AU
	// the Moon's distance from Earth ranges roughly 356500km-406700km
	if rMeters < 3.5e8 || rMeters > 4.1e8 {
		t.Errorf("Moon distance = %v m, want within lunar range", rMeters)
	}
	if b.Coords.Heliocentric {
		t.Error("Moon coords should be geocentric")
	}
}

func TestCartesianCoordsConversionRoundTrips(t *testing.T) {
	b := NewBody(Earth, 10)
	meters := b.Coords.ToMeters()
	if !meters.InMeters {
		t.Fatal("ToMeters() did not set InMeters")
	}
	backToAU := meters.ToAU()
	if backToAU.InMeters {
		t.Fatal("ToAU() did not clear InMeters")
	}
	if math.Abs(backToAU.Vec.X-b.Coords.Vec.X) > 1e-9 {
		t.Errorf("round trip X = %v, want %v", backToAU.Vec.X, b.Coords.Vec.X)
	}
}

func TestCoordsConversionIsIdempotent(t *testing.T) {
	b := NewBody(Earth, 10)
	once := b.Coords.ToMeters()
	twice := once.ToMeters()
	if once.Vec != twice.Vec {
		t.Errorf("ToMeters() is not idempotent: %v != %v", once.Vec, twice.Vec)
	}
}

func TestRefreshUpdatesMoonUsingStoredElements(t *testing.T) {
	b := NewBody(Moon, 0)
	first := b.Coords.Vec
	b.Refresh(10)
	if b.Coords.Vec == first {
		t.Error("Refresh(10) did not change the Moon's position")
	}
}

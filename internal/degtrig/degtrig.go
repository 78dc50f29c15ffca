// Package degtrig provides degree-argument trigonometric helpers. The
// Kepler solver and the Earth/Moon ephemeris formulas in spec.md §4 are
// all stated in degrees, mirroring the sin_deg!/cos_deg!/atan2_deg! macros
// original_source/src/bodies.rs uses throughout; this package is the Go
// equivalent, used instead of carrying unit.Angle through every
// intermediate term of those formulas.
package degtrig

import "math"

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// Sin returns the sine of deg degrees.
func Sin(deg float64) float64 { return math.Sin(deg * Deg2Rad) }

// Cos returns the cosine of deg degrees.
func Cos(deg float64) float64 { return math.Cos(deg * Deg2Rad) }

// Sincos returns the sine and cosine of deg degrees.
func Sincos(deg float64) (sin, cos float64) { return math.Sincos(deg * Deg2Rad) }

// Atan2 returns atan2(y, x) in degrees.
func Atan2(y, x float64) float64 { return math.Atan2(y, x) * Rad2Deg }

// Norm360 reduces deg to the range [0, 360).
func Norm360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Package rcmath holds the degree-based trigonometry shared by the ray caster
// and the world update.
//
// Angles are in degrees. 0° points "up" the map (towards decreasing y) and
// angles grow clockwise, so 90° points towards increasing x.
package rcmath

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Epsilon is the float64 machine epsilon. Trig results at or below it are
// snapped to exactly zero so callers can compare against 0 at cardinal angles.
const Epsilon = 0x1p-52

// FullCircle is the number of degrees in one revolution.
const FullCircle = 360.0

// Point is a location in world units (feet).
type Point = geom.Vector2

func ToRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

func SinDeg(degrees float64) float64 {
	return snap(math.Sin(ToRadians(degrees)))
}

func CosDeg(degrees float64) float64 {
	return snap(math.Cos(ToRadians(degrees)))
}

// TanDeg returns the tangent of degrees. At 90 and 270 it returns the large
// finite value math.Tan produces for the nearest representable radian, so
// dividing by it gives a vanishing but finite step.
func TanDeg(degrees float64) float64 {
	return snap(math.Tan(ToRadians(degrees)))
}

// Distance is the euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NormalizeAngle wraps degrees into [0, 360). Any number of whole turns is
// removed, in either direction; non-finite input is returned unchanged.
func NormalizeAngle(degrees float64) float64 {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return degrees
	}
	a := math.Mod(degrees, FullCircle)
	for a < 0 {
		a += FullCircle
	}
	// a tiny negative remainder can round up to exactly 360 above
	for a >= FullCircle {
		a -= FullCircle
	}
	return a
}

// Sign returns -1, 0 or 1.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func snap(v float64) float64 {
	if math.Abs(v) <= Epsilon {
		return 0
	}
	return v
}

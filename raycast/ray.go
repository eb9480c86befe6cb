package raycast

import "wolfcast/rcmath"

// Screen describes the viewport: one ray per pixel column, each
// DegPerPixel degrees apart.
type Screen struct {
	Width       int
	Height      int
	DegPerPixel float64
}

// FOV is the horizontal field of view in degrees.
func (s Screen) FOV() float64 { return float64(s.Width) * s.DegPerPixel }

// RayAngle returns the angle of the ray cast through column for a viewer
// facing heading.
func (s Screen) RayAngle(heading float64, column int) float64 {
	return rcmath.NormalizeAngle(heading - s.FOV()/2 + float64(column)*s.DegPerPixel)
}

// Ray is a cast direction. XDir and YDir give the direction of travel along
// each axis; 0 marks an axis the ray runs exactly parallel to, which the
// traversal never steps along.
type Ray struct {
	Angle float64
	XDir  int
	YDir  int
}

// NewRay builds the ray for angle. y grows downward while 0° faces up, hence
// the negated cosine.
func NewRay(angle float64) Ray {
	a := rcmath.NormalizeAngle(angle)
	return Ray{
		Angle: a,
		XDir:  rcmath.Sign(rcmath.SinDeg(a)),
		YDir:  -rcmath.Sign(rcmath.CosDeg(a)),
	}
}

// Axis says which family of grid lines a ray hit.
type Axis int

const (
	// AxisVertical is a constant-x grid line, found by the x-intercept cursor.
	AxisVertical Axis = iota
	// AxisHorizontal is a constant-y grid line.
	AxisHorizontal
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

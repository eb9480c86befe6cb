package raycast

import (
	"fmt"
	"strings"

	"wolfcast/rcmath"
)

// DistanceMode selects how a raw hit distance becomes the distance used for
// projection. It is chosen once when the renderer is built.
type DistanceMode int

const (
	// Perpendicular projects the hit onto the viewing direction, removing
	// fisheye distortion.
	Perpendicular DistanceMode = iota
	// Fisheye uses the raw euclidean distance. Straight walls bow outward;
	// useful only to show what Perpendicular corrects.
	Fisheye
)

func (m DistanceMode) String() string {
	switch m {
	case Perpendicular:
		return "perpendicular"
	case Fisheye:
		return "fisheye"
	}
	return fmt.Sprintf("DistanceMode(%d)", int(m))
}

func ParseDistanceMode(s string) (DistanceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perpendicular", "corrected":
		return Perpendicular, nil
	case "fisheye", "raw":
		return Fisheye, nil
	}
	return 0, fmt.Errorf("raycast: unknown distance mode %q", s)
}

// Correct converts raw, measured along a ray at rayAngle, for a viewer
// facing heading.
func (m DistanceMode) Correct(raw, heading, rayAngle float64) float64 {
	if m == Fisheye {
		return raw
	}
	return CorrectDistance(raw, heading, rayAngle)
}

// CorrectDistance is the distance from the camera plane to a hit raw units
// away along a ray rayAngle degrees off the heading.
func CorrectDistance(raw, heading, rayAngle float64) float64 {
	return raw * rcmath.CosDeg(heading-rayAngle)
}

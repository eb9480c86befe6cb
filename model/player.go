package model

import (
	"math"

	"wolfcast/rcmath"
)

type Point = rcmath.Point

// PlayerState is the viewer's location in world units and heading in degrees.
// Heading is always kept in [0, 360).
type PlayerState struct {
	Location Point
	Heading  float64
}

// Tile returns the grid cell the player stands in.
func (p PlayerState) Tile(blockSize float64) (row, col int) {
	return int(math.Floor(p.Location.Y / blockSize)), int(math.Floor(p.Location.X / blockSize))
}

// Equals reports whether two states are identical.
func (p PlayerState) Equals(o PlayerState) bool {
	return p.Location.X == o.Location.X && p.Location.Y == o.Location.Y && p.Heading == o.Heading
}

// Motion holds how far the player moves and turns per frame.
type Motion struct {
	MoveStep float64 // feet per frame
	TurnStep float64 // degrees per frame
}

const (
	defaultMoveStep = 1.0
	defaultTurnStep = 1.0
)

func DefaultMotion() Motion {
	return Motion{MoveStep: defaultMoveStep, TurnStep: defaultTurnStep}
}

// Update advances the player by one frame. The turn is applied first and the
// move follows the new heading. Walls are not consulted. Update is pure.
func Update(prev PlayerState, in InputState, m Motion) PlayerState {
	move, turn := in.Intent()

	heading := rcmath.NormalizeAngle(prev.Heading + m.TurnStep*float64(turn))
	if move == 0 {
		return PlayerState{Location: prev.Location, Heading: heading}
	}

	step := m.MoveStep * float64(move)
	return PlayerState{
		Location: Point{
			X: prev.Location.X + step*-rcmath.SinDeg(heading),
			Y: prev.Location.Y + step*rcmath.CosDeg(heading),
		},
		Heading: heading,
	}
}

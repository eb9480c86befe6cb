package model

// InputState is one frame's snapshot of the player's movement intents.
type InputState struct {
	MoveForward  bool
	MoveBackward bool
	TurnLeft     bool
	TurnRight    bool
}

// Intent collapses the four flags into net move and turn directions in
// {-1, 0, 1}. Opposing flags cancel. Forward is -1 because the map's y axis
// grows downward while heading 0 faces up.
func (in InputState) Intent() (move, turn int) {
	if in.MoveForward {
		move--
	}
	if in.MoveBackward {
		move++
	}
	if in.TurnLeft {
		turn--
	}
	if in.TurnRight {
		turn++
	}
	return move, turn
}

func (in InputState) Idle() bool {
	move, turn := in.Intent()
	return move == 0 && turn == 0
}

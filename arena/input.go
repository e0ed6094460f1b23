package arena

// Input is the player's controls sampled for a single tick.
type Input struct {
	Up, Down, Left, Right bool // held arrow keys

	Fire bool // fire key pressed this tick (edge-triggered)
	Quit bool // window close or quit key
}

// Delta sums the movement of every held arrow key. Opposite keys cancel out.
func (in Input) Delta() Vec {
	var d Vec
	if in.Up {
		d.Y -= MoveStep
	}
	if in.Down {
		d.Y += MoveStep
	}
	if in.Left {
		d.X -= MoveStep
	}
	if in.Right {
		d.X += MoveStep
	}
	return d
}

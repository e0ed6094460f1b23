package arena

import "math"

// Facing is one of eight directions, 45 degrees apart, counter-clockwise from
// Right. It selects both the player's sprite and a projectile's heading.
type Facing int

const (
	FacingRight Facing = iota
	FacingUpRight
	FacingUp
	FacingUpLeft
	FacingLeft
	FacingDownLeft
	FacingDown
	FacingDownRight

	FacingCount = 8
)

// facingVecs holds the movement vector of each facing. Screen y grows down.
var facingVecs = [FacingCount]Vec{
	FacingRight:     {+MoveStep, 0},
	FacingUpRight:   {+MoveStep, -MoveStep},
	FacingUp:        {0, -MoveStep},
	FacingUpLeft:    {-MoveStep, -MoveStep},
	FacingLeft:      {-MoveStep, 0},
	FacingDownLeft:  {-MoveStep, +MoveStep},
	FacingDown:      {0, +MoveStep},
	FacingDownRight: {+MoveStep, +MoveStep},
}

// Vec returns the facing's vector, with each component in {-5, 0, +5}.
func (f Facing) Vec() Vec {
	return facingVecs[f]
}

// Unit returns the facing's vector reduced to components in {-1, 0, +1}.
func (f Facing) Unit() Vec {
	v := facingVecs[f]
	return Vec{sign(v.X), sign(v.Y)}
}

// Degrees returns the counter-clockwise screen angle of the facing, computed as
// atan2(-vy, vx). Right is 0, Up is 90, DownRight is -45.
func (f Facing) Degrees() float64 {
	v := facingVecs[f]
	return math.Atan2(float64(-v.Y), float64(v.X)) * 180 / math.Pi
}

func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "right"
	case FacingUpRight:
		return "up-right"
	case FacingUp:
		return "up"
	case FacingUpLeft:
		return "up-left"
	case FacingLeft:
		return "left"
	case FacingDownLeft:
		return "down-left"
	case FacingDown:
		return "down"
	case FacingDownRight:
		return "down-right"
	}
	return "unknown"
}

// FacingOf returns the facing whose direction matches v. ok is false for the
// zero vector.
func FacingOf(v Vec) (f Facing, ok bool) {
	u := Vec{sign(v.X), sign(v.Y)}
	for i := range FacingCount {
		if Facing(i).Unit() == u {
			return Facing(i), true
		}
	}
	return FacingRight, false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

package arena

import "image/color"

// Rand is the random source used for spawning. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Hazard is a bouncing circle. It never leaves the arena on its own; it is
// only removed when a projectile hits it.
type Hazard struct {
	Entity

	Color  color.RGBA
	Radius int
}

// NewHazard creates a hazard at a uniformly random position whose rectangle
// lies fully inside b, moving diagonally down-right.
func NewHazard(rng Rand, b Bounds, clr color.RGBA, radius int) *Hazard {
	d := 2 * radius
	c := Vec{
		X: radius + rng.IntN(max(b.Width-d, 0)+1),
		Y: radius + rng.IntN(max(b.Height-d, 0)+1),
	}
	return &Hazard{
		Entity: newEntity(EntityTypeHazard, c, Size{d, d}, Vec{HazardSpeed, HazardSpeed}),
		Color:  clr,
		Radius: radius,
	}
}

// Advance reflects the velocity on every axis where the hazard is currently
// out of bounds, then moves by the resulting velocity. Reflection happens
// before the move, so the hazard may end a tick up to one step past the edge.
func (h *Hazard) Advance(b Bounds) {
	inX, inY := b.Check(h.Rect)
	if !inX {
		h.Velocity.X = -h.Velocity.X
	}
	if !inY {
		h.Velocity.Y = -h.Velocity.Y
	}
	h.move()
}

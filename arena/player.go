package arena

// Player is the keyboard-controlled sprite. Its rectangle keeps the size of the
// right-facing sprite for the whole game; only the drawn image changes with
// facing.
type Player struct {
	Entity

	// Current direction, also selects the sprite
	Facing Facing

	// Alternate sprite number shown instead of the facing sprite, 0 for none.
	// Cleared by the next non-zero movement.
	Variant int
}

// NewPlayer creates the player centred at c, facing right.
func NewPlayer(c Vec, s Size) *Player {
	return &Player{
		Entity: newEntity(EntityTypePlayer, c, s, Vec{}),
		Facing: FacingRight,
	}
}

// Advance moves the player by the summed arrow-key delta. A move that would
// leave the bounds on either axis is cancelled as a whole, not clamped. Any
// non-zero delta updates the facing, even when the move was cancelled.
func (p *Player) Advance(in Input, b Bounds) {
	d := in.Delta()
	p.Velocity = d

	moved := p.Rect.Move(d)
	if b.Contains(moved) {
		p.Rect = moved
	}

	if f, ok := FacingOf(d); ok {
		p.Facing = f
		p.Variant = 0
	}
}

// ChangeImage swaps the drawn sprite to the numbered variant.
func (p *Player) ChangeImage(variant int) {
	p.Variant = variant
}

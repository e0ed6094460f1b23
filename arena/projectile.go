package arena

// Projectile is a shot fired along the player's facing at the time of firing.
type Projectile struct {
	Entity

	// Direction of travel; selects the rotated sprite
	Facing Facing

	// Whether the last Advance moved the projectile (and so it is drawn)
	Visible bool
}

// NewProjectile creates a projectile in front of the player. Its centre is
// offset from the player's centre by half the player's size along the facing,
// and its velocity is the facing vector.
func NewProjectile(p *Player, s Size) *Projectile {
	u := p.Facing.Unit()
	c := p.Center().Add(Vec{p.Rect.W / 2 * u.X, p.Rect.H / 2 * u.Y})
	return &Projectile{
		Entity:  newEntity(EntityTypeProjectile, c, s, p.Facing.Vec()),
		Facing:  p.Facing,
		Visible: true,
	}
}

// Advance moves the projectile if it is still inside the bounds. An
// out-of-bounds projectile stays put and is not drawn; removing it is up to
// the World.
func (pr *Projectile) Advance(b Bounds) {
	pr.Visible = b.Contains(pr.Rect)
	if pr.Visible {
		pr.move()
	}
}

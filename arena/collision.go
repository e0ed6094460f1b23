package arena

// CollisionSystem resolves the two per-tick collision passes over a World.
type CollisionSystem struct {
	world *World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{
		world: world,
	}
}

// CheckPlayer reports whether any live hazard touches the player. It runs
// before the scoring pass, so a hazard that is also hit by a projectile this
// tick still ends the game.
func (c *CollisionSystem) CheckPlayer() bool {
	player := c.world.Player
	for _, h := range c.world.Hazards {
		if h.IsDestroyed() {
			continue
		}
		if player.IsColliding(&h.Entity) {
			return true
		}
	}
	return false
}

// CheckProjectiles pairs every live hazard with every live projectile. Each
// hit destroys both, scores a point, leaves an explosion and flashes the
// player's hit sprite. Projectiles outside the bounds are destroyed
// regardless of hits. It returns the number of hazards destroyed.
func (c *CollisionSystem) CheckProjectiles() int {
	w := c.world
	hits := 0

	for _, h := range w.Hazards {
		if h.IsDestroyed() {
			continue
		}
		for _, p := range w.Projectiles {
			if p.IsDestroyed() {
				continue
			}
			if p.IsColliding(&h.Entity) {
				c.HandleHit(h, p)
				hits++
				break // a destroyed hazard takes no further hits
			}
		}
	}

	for _, p := range w.Projectiles {
		if !w.Bounds.Contains(p.Rect) {
			p.MarkDestroyed()
		}
	}

	return hits
}

// HandleHit resolves a single projectile hitting a hazard.
func (c *CollisionSystem) HandleHit(h *Hazard, p *Projectile) {
	w := c.world
	h.MarkDestroyed()
	p.MarkDestroyed()
	w.Score.Add(1)
	w.Explosions = append(w.Explosions, NewExplosion(h.Center(), w.Dims.Explosion))
	w.Player.ChangeImage(HitVariant)
}

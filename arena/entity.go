package arena

// EntityType identifies the kind of entity
type EntityType int

const (
	EntityTypePlayer EntityType = iota
	EntityTypeProjectile
	EntityTypeHazard
	EntityTypeExplosion
)

func (t EntityType) String() string {
	switch t {
	case EntityTypePlayer:
		return "player"
	case EntityTypeProjectile:
		return "projectile"
	case EntityTypeHazard:
		return "hazard"
	case EntityTypeExplosion:
		return "explosion"
	}
	return "unknown"
}

// Entity is the shape shared by everything that lives in the arena: a
// rectangle sized from its image, used for both collision and drawing, and a
// velocity in pixels per tick.
type Entity struct {
	Type EntityType

	// Bounding rectangle in world coordinates
	Rect Rect

	// Velocity in pixels per tick (may be zero)
	Velocity Vec

	// Marked for removal at the next compaction
	destroyed bool
}

// newEntity creates an entity of the given size centred at c.
func newEntity(t EntityType, c Vec, s Size, vel Vec) Entity {
	return Entity{
		Type:     t,
		Rect:     RectAt(c, s),
		Velocity: vel,
	}
}

// Center returns the entity's centre point.
func (e *Entity) Center() Vec {
	return e.Rect.Center()
}

// IsColliding checks if this entity's rectangle overlaps another's
func (e *Entity) IsColliding(other *Entity) bool {
	return e.Rect.Intersects(other.Rect)
}

// MarkDestroyed flags the entity for removal.
func (e *Entity) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the entity is flagged for removal.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// move applies the velocity to the rectangle.
func (e *Entity) move() {
	e.Rect = e.Rect.Move(e.Velocity)
}

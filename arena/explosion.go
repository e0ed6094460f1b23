package arena

// Explosion is a short-lived effect left where a hazard was destroyed.
type Explosion struct {
	Entity

	// Ticks left before the explosion expires
	Life int

	// Frame drawn for the current tick, recorded by Advance
	shown int
}

// NewExplosion creates an explosion of the given size centred at c.
func NewExplosion(c Vec, s Size) *Explosion {
	e := &Explosion{
		Entity: newEntity(EntityTypeExplosion, c, s, Vec{}),
		Life:   ExplosionLife,
	}
	e.shown = e.Frame()
	return e
}

// Frame returns the frame index for the remaining life: 0 for the first half
// of each 50-tick window (Life%50 < 25), 1 for the second.
func (e *Explosion) Frame() int {
	if e.Life%ExplosionPeriod < ExplosionPeriod/2 {
		return 0
	}
	return 1
}

// ShownFrame returns the frame selected by the last Advance.
func (e *Explosion) ShownFrame() int {
	return e.shown
}

// Advance picks this tick's frame and counts the life down by one.
func (e *Explosion) Advance() {
	e.shown = e.Frame()
	e.Life--
}

// Expired reports whether the explosion has run out of life.
func (e *Explosion) Expired() bool {
	return e.Life <= 0
}

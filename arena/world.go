package arena

import "slices"

// State is the World's phase.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game-over"
	}
	return "running"
}

// Dimensions holds the collision sizes of the image-backed entities. They are
// taken from the loaded sprites at startup.
type Dimensions struct {
	Player     Size
	Projectile Size
	Explosion  Size
}

// Events summarises what happened during one Step.
type Events struct {
	Fired     int  // projectiles spawned
	Destroyed int  // hazards destroyed
	GameOver  bool // the player was hit this tick
	Quit      bool // the player asked to quit
}

// World owns every entity collection and the score, and advances them one
// tick at a time.
type World struct {
	Bounds Bounds
	Dims   Dimensions

	Player      *Player
	Projectiles []*Projectile
	Hazards     []*Hazard
	Explosions  []*Explosion
	Score       Score

	State State
	Tick  int

	collisions *CollisionSystem
}

// NewWorld creates a running world with the player at its start position and
// HazardCount hazards at random positions.
func NewWorld(dims Dimensions, rng Rand) *World {
	w := &World{
		Bounds:  Arena,
		Dims:    dims,
		Player:  NewPlayer(PlayerStart, dims.Player),
		Hazards: make([]*Hazard, 0, HazardCount),
		State:   Running,
	}
	w.collisions = NewCollisionSystem(w)

	for range HazardCount {
		w.Hazards = append(w.Hazards, NewHazard(rng, w.Bounds, HazardColor, HazardRadius))
	}
	return w
}

// Fire spawns a projectile from the player's current facing.
func (w *World) Fire() *Projectile {
	p := NewProjectile(w.Player, w.Dims.Projectile)
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// Step runs one tick: input, the fatal collision pass, the scoring pass,
// compaction, then advancing every entity in draw order. Once the world is
// over, Step does nothing.
func (w *World) Step(in Input) Events {
	var ev Events
	if w.State == GameOver {
		return ev
	}

	if in.Quit {
		ev.Quit = true
		return ev
	}
	if in.Fire {
		w.Fire()
		ev.Fired++
	}

	if w.collisions.CheckPlayer() {
		w.State = GameOver
		ev.GameOver = true
		return ev
	}

	ev.Destroyed = w.collisions.CheckProjectiles()

	w.compact()

	w.Player.Advance(in, w.Bounds)
	for _, p := range w.Projectiles {
		p.Advance(w.Bounds)
	}
	for _, h := range w.Hazards {
		h.Advance(w.Bounds)
	}
	for _, e := range w.Explosions {
		e.Advance()
	}

	w.Tick++
	return ev
}

// compact drops destroyed hazards and projectiles and expired explosions.
func (w *World) compact() {
	w.Hazards = slices.DeleteFunc(w.Hazards, func(h *Hazard) bool { return h.IsDestroyed() })
	w.Projectiles = slices.DeleteFunc(w.Projectiles, func(p *Projectile) bool { return p.IsDestroyed() })
	w.Explosions = slices.DeleteFunc(w.Explosions, func(e *Explosion) bool { return e.Expired() })
}

package arena

import (
	"image/color"
	"time"
)

// World geometry
const (
	Width  = 1100
	Height = 650
)

// Arena is the fixed play area every entity is checked against.
var Arena = Bounds{Width: Width, Height: Height}

// Gameplay constants
const (
	TicksPerSecond = 50 // fixed update rate
	MoveStep       = 5  // pixels per tick for a single held arrow key

	HazardCount  = 5
	HazardRadius = 10
	HazardSpeed  = 5 // initial velocity is (+HazardSpeed, +HazardSpeed)

	ExplosionLife   = 100 // ticks
	ExplosionPeriod = 50  // ticks per A/B frame cycle

	HitVariant = 6 // alternate player sprite shown after destroying a hazard

	GameOverDelay = time.Second
)

// Fixed screen positions
var (
	PlayerStart = Vec{300, 200}
	ScoreCenter = Vec{100, Height - 50}
	BannerPos   = Vec{Width/2 - 150, Height / 2}
)

// Colors
var (
	HazardColor = color.RGBA{R: 255, A: 255}
	ScoreColor  = color.RGBA{B: 255, A: 255}
	BannerColor = color.RGBA{R: 255, A: 255}
)

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"arenashooter/arena"
)

// Controls are the keys that act on the session rather than the world.
type Controls struct {
	ToggleHitboxes   bool // F1
	ToggleFullscreen bool // Alt+Enter
}

// InputProvider reads one tick of input.
type InputProvider interface {
	Poll() (arena.Input, Controls)
}

// KeyboardInput reads the arrow keys, Space, Escape and the window close
// button.
type KeyboardInput struct {
	prevAltEnter bool
}

// NewKeyboardInput creates a new keyboard input provider
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll returns the held arrows plus the keys pressed since the last tick.
// Space fires once per press.
func (k *KeyboardInput) Poll() (arena.Input, Controls) {
	in := arena.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:  inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
	}

	// Alt+Enter toggles fullscreen, only on the press edge
	altEnter := ebiten.IsKeyPressed(ebiten.KeyAlt) && ebiten.IsKeyPressed(ebiten.KeyEnter)
	ctl := Controls{
		ToggleHitboxes:   inpututil.IsKeyJustPressed(ebiten.KeyF1),
		ToggleFullscreen: altEnter && !k.prevAltEnter,
	}
	k.prevAltEnter = altEnter

	return in, ctl
}

package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/arena"
)

// GameOverText is drawn over the background when the player is hit.
const GameOverText = "Game Over"

var (
	whiteColor  = color.RGBA{255, 255, 255, 255}
	hitboxColor = color.RGBA{0, 255, 0, 255}
)

// Renderer draws a World onto the screen.
type Renderer struct {
	sprites *Sprites
	fonts   *Fonts

	// ShowHitboxes outlines every collision rectangle
	ShowHitboxes bool
}

// NewRenderer creates a new renderer
func NewRenderer(sprites *Sprites, fonts *Fonts) *Renderer {
	return &Renderer{
		sprites: sprites,
		fonts:   fonts,
	}
}

// Draw renders the world. While the world is over only the background and
// the banner are shown.
func (r *Renderer) Draw(screen *ebiten.Image, w *arena.World) {
	screen.DrawImage(r.sprites.Background, nil)

	if w.State == arena.GameOver {
		r.drawBanner(screen)
		return
	}

	r.drawCentered(screen, r.sprites.PlayerImage(w.Player), w.Player.Center())

	for _, p := range w.Projectiles {
		if p.Visible {
			r.drawCentered(screen, r.sprites.Projectile[p.Facing], p.Center())
		}
	}

	for _, h := range w.Hazards {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(h.Rect.X), float64(h.Rect.Y))
		op.ColorScale.ScaleWithColor(h.Color)
		screen.DrawImage(r.sprites.Hazard(h.Radius), op)
	}

	for _, e := range w.Explosions {
		r.drawCentered(screen, r.sprites.Explosion[e.ShownFrame()], e.Center())
	}

	r.drawScore(screen, w.Score)

	if r.ShowHitboxes {
		r.drawHitboxes(screen, w)
	}
}

// drawCentered draws img with its centre at c.
func (r *Renderer) drawCentered(screen, img *ebiten.Image, c arena.Vec) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.X-b.Dx()/2), float64(c.Y-b.Dy()/2))
	screen.DrawImage(img, op)
}

func (r *Renderer) drawScore(screen *ebiten.Image, s arena.Score) {
	str := s.Text()
	w, h := text.Measure(str, r.fonts.Score, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(arena.ScoreCenter.X)-w/2, float64(arena.ScoreCenter.Y)-h/2)
	op.ColorScale.ScaleWithColor(arena.ScoreColor)
	text.Draw(screen, str, r.fonts.Score, op)
}

func (r *Renderer) drawBanner(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(arena.BannerPos.X), float64(arena.BannerPos.Y))
	op.ColorScale.ScaleWithColor(arena.BannerColor)
	text.Draw(screen, GameOverText, r.fonts.Banner, op)
}

// drawHitboxes outlines the collision rectangles of every live entity.
func (r *Renderer) drawHitboxes(screen *ebiten.Image, w *arena.World) {
	rects := []arena.Rect{w.Player.Rect}
	for _, p := range w.Projectiles {
		rects = append(rects, p.Rect)
	}
	for _, h := range w.Hazards {
		rects = append(rects, h.Rect)
	}
	for _, e := range w.Explosions {
		rects = append(rects, e.Rect)
	}

	for _, rc := range rects {
		vector.StrokeRect(screen, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), 1, hitboxColor, false)
	}
}

package game

import (
	"fmt"
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"arenashooter/arena"
	"arenashooter/assets"
)

// playerScale shrinks the bird art to its on-screen size.
const playerScale = 0.9

// Sprites holds every image the renderer draws, prepared once at startup.
type Sprites struct {
	Background *ebiten.Image

	// Player holds the bird for each facing; Variants the alternate poses
	// by image number.
	Player   [arena.FacingCount]*ebiten.Image
	Variants map[int]*ebiten.Image

	Projectile [arena.FacingCount]*ebiten.Image
	Explosion  [2]*ebiten.Image

	hazards map[int]*ebiten.Image // by radius, built on first draw

	dims arena.Dimensions
}

// LoadSprites decodes the assets and builds the rotated and flipped frames.
func LoadSprites(l *assets.Loader) (*Sprites, error) {
	frames, err := buildFrames(l)
	if err != nil {
		return nil, err
	}

	s := &Sprites{
		Background: ebiten.NewImageFromImage(frames.background),
		Variants:   make(map[int]*ebiten.Image, len(frames.variants)),
		hazards:    make(map[int]*ebiten.Image),
		dims:       frames.dims,
	}
	for f := range arena.Facing(arena.FacingCount) {
		s.Player[f] = ebiten.NewImageFromImage(frames.player[f])
		s.Projectile[f] = ebiten.NewImageFromImage(frames.projectile[f])
	}
	for n, img := range frames.variants {
		s.Variants[n] = ebiten.NewImageFromImage(img)
	}
	for i, img := range frames.explosion {
		s.Explosion[i] = ebiten.NewImageFromImage(img)
	}
	return s, nil
}

// Dimensions reports the collision sizes taken from the base images.
func (s *Sprites) Dimensions() arena.Dimensions {
	return s.dims
}

// PlayerImage picks the pose for a player: a variant while one is shown,
// otherwise the image for its facing.
func (s *Sprites) PlayerImage(p *arena.Player) *ebiten.Image {
	if p.Variant != 0 {
		if img, ok := s.Variants[p.Variant]; ok {
			return img
		}
	}
	return s.Player[p.Facing]
}

// Hazard returns a filled circle image for a hazard, cached by radius. The
// color is applied at draw time.
func (s *Sprites) Hazard(radius int) *ebiten.Image {
	if img, ok := s.hazards[radius]; ok {
		return img
	}
	img := ebiten.NewImage(2*radius, 2*radius)
	r := float32(radius)
	vector.DrawFilledCircle(img, r, r, r, whiteColor, true)
	s.hazards[radius] = img
	return img
}

// frames are the decoded, transformed images before upload.
type frames struct {
	background image.Image
	player     [arena.FacingCount]image.Image
	variants   map[int]image.Image
	projectile [arena.FacingCount]image.Image
	explosion  [2]image.Image
	dims       arena.Dimensions
}

// buildFrames loads every asset and prepares the per-facing images. The bird
// art faces left; the beam art points right.
func buildFrames(l *assets.Loader) (*frames, error) {
	load := func(name string) (image.Image, error) {
		img, err := l.Image(name)
		if err != nil {
			return nil, fmt.Errorf("load sprite %q: %w", name, err)
		}
		return img, nil
	}

	fr := &frames{variants: make(map[int]image.Image)}

	var err error
	if fr.background, err = load(assets.Background); err != nil {
		return nil, err
	}

	bird, err := load(assets.Player)
	if err != nil {
		return nil, err
	}
	left := assets.RotoZoom(bird, 0, playerScale)
	right := assets.Flip(left, true, false)
	fr.player = [arena.FacingCount]image.Image{
		arena.FacingRight:     right,
		arena.FacingUpRight:   assets.RotoZoom(right, 45, playerScale),
		arena.FacingUp:        assets.RotoZoom(right, 90, playerScale),
		arena.FacingUpLeft:    assets.RotoZoom(left, -45, playerScale),
		arena.FacingLeft:      left,
		arena.FacingDownLeft:  assets.RotoZoom(left, 45, playerScale),
		arena.FacingDown:      assets.RotoZoom(right, -90, playerScale),
		arena.FacingDownRight: assets.RotoZoom(right, -45, playerScale),
	}

	for _, n := range []int{arena.HitVariant} {
		img, err := load(strconv.Itoa(n))
		if err != nil {
			return nil, err
		}
		fr.variants[n] = assets.RotoZoom(img, 0, playerScale)
	}

	beam, err := load(assets.Projectile)
	if err != nil {
		return nil, err
	}
	for f := range arena.Facing(arena.FacingCount) {
		fr.projectile[f] = assets.RotoZoom(beam, f.Degrees(), 1)
	}

	boom, err := load(assets.Explosion)
	if err != nil {
		return nil, err
	}
	fr.explosion = [2]image.Image{boom, assets.Flip(boom, true, true)}

	fr.dims = arena.Dimensions{
		Player:     sizeOf(left),
		Projectile: sizeOf(beam),
		Explosion:  sizeOf(boom),
	}
	return fr, nil
}

func sizeOf(img image.Image) arena.Size {
	b := img.Bounds()
	return arena.Size{W: b.Dx(), H: b.Dy()}
}

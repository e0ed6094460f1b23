package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

const squareSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="12" height="8" viewBox="0 0 12 8">
  <rect x="0" y="0" width="12" height="8" fill="#ff0000"/>
</svg>`

func TestEmbedded_AllNamesLoad(t *testing.T) {
	want := map[string]image.Point{
		Background: {1100, 650},
		Player:     {66, 60},
		"6":        {66, 60},
		Projectile: {60, 20},
		Explosion:  {80, 80},
	}

	l := NewLoader(Embedded())
	for _, name := range Names {
		img, err := l.Image(name)
		if err != nil {
			t.Errorf("Image(%q): %v", name, err)
			continue
		}
		if got := img.Bounds().Size(); got != want[name] {
			t.Errorf("Image(%q) size = %v, expected %v", name, got, want[name])
		}
	}
}

func TestLoader_SVGIsRasterized(t *testing.T) {
	l := NewLoader(fstest.MapFS{"box.svg": {Data: []byte(squareSVG)}})

	img, err := l.Image("box")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{12, 8}) {
		t.Errorf("expected 12x8, got %v", got)
	}
	r, _, _, a := img.At(6, 4).RGBA()
	if r == 0 || a == 0 {
		t.Errorf("expected an opaque red centre pixel, got r=%d a=%d", r, a)
	}
}

func TestLoader_LayerPrecedence(t *testing.T) {
	top := fstest.MapFS{"3.png": {Data: encodePNG(t, 5, 5)}}
	bottom := fstest.MapFS{
		"3.svg":    {Data: []byte(squareSVG)},
		"beam.svg": {Data: []byte(squareSVG)},
	}
	l := NewLoader(top, bottom)

	img, err := l.Image("3")
	if err != nil {
		t.Fatalf("Image(3): %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{5, 5}) {
		t.Errorf("expected the top layer's 5x5 png, got %v", got)
	}

	img, err = l.Image("beam")
	if err != nil {
		t.Fatalf("Image(beam): %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{12, 8}) {
		t.Errorf("expected fallback to the bottom layer, got %v", got)
	}
}

func TestLoader_Errors(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"broken.png": {Data: []byte("not a png")},
		"empty.svg":  {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 0 0"></svg>`)},
	})

	if _, err := l.Image("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := l.Image("broken"); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("expected a decode error, got %v", err)
	}
	if _, err := l.Image("empty"); err == nil {
		t.Errorf("expected an error for an empty view box")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	l := Default(filepath.Dir(path))
	got, err := l.Image("out")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Bounds().Size() != (image.Point{3, 2}) {
		t.Errorf("expected 3x2, got %v", got.Bounds().Size())
	}
}

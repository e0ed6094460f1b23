package assets

import (
	"image"
	"image/color"
	"testing"
)

// markedImage returns a w x h transparent image with one opaque pixel at (px, py).
func markedImage(w, h, px, py int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(px, py, color.RGBA{R: 255, A: 255})
	return img
}

func TestRotoZoom_Sizes(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 60, 20))
	tests := []struct {
		degrees, scale float64
		want           image.Point
	}{
		{0, 1, image.Point{60, 20}},
		{180, 1, image.Point{60, 20}},
		{90, 1, image.Point{20, 60}},
		{-90, 1, image.Point{20, 60}},
		{0, 0.5, image.Point{30, 10}},
		{0, 0.9, image.Point{54, 18}},
	}
	for _, tt := range tests {
		got := RotoZoom(src, tt.degrees, tt.scale).Bounds().Size()
		if got != tt.want {
			t.Errorf("RotoZoom(%v°, x%v) size = %v, expected %v", tt.degrees, tt.scale, got, tt.want)
		}
	}

	diag := RotoZoom(image.NewRGBA(image.Rect(0, 0, 10, 10)), 45, 1).Bounds().Size()
	if diag.X != 15 || diag.Y != 15 {
		t.Errorf("45° turn of a 10x10 image should fit in 15x15, got %v", diag)
	}
}

func TestRotoZoom_CounterClockwise(t *testing.T) {
	// A thick bar on the right half; after a 90° counter-clockwise turn it
	// must sit on the top half.
	src := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := 8; y < 12; y++ {
		for x := 12; x < 20; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	dst := RotoZoom(src, 90, 1)

	_, _, _, top := dst.At(10, 4).RGBA()
	_, _, _, bottom := dst.At(10, 15).RGBA()
	if top == 0 {
		t.Errorf("expected the bar to be rotated to the top")
	}
	if bottom != 0 {
		t.Errorf("expected nothing at the bottom after rotation")
	}
}

func TestFlip(t *testing.T) {
	src := markedImage(4, 3, 0, 0)

	h := Flip(src, true, false)
	if _, _, _, a := h.At(3, 0).RGBA(); a == 0 {
		t.Errorf("horizontal flip should move (0,0) to (3,0)")
	}

	hv := Flip(src, true, true)
	if _, _, _, a := hv.At(3, 2).RGBA(); a == 0 {
		t.Errorf("double flip should move (0,0) to (3,2)")
	}
	if _, _, _, a := hv.At(0, 0).RGBA(); a != 0 {
		t.Errorf("double flip should clear (0,0)")
	}
}

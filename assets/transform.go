package assets

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RotoZoom rotates src counter-clockwise by degrees (as seen on screen) and
// scales it, returning a new image just large enough to hold the result.
func RotoZoom(src image.Image, degrees, scale float64) *image.RGBA {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)

	sb := src.Bounds()
	w, h := float64(sb.Dx()), float64(sb.Dy())

	// Bounding box of the rotated, scaled source
	dw := fitDim(scale * (w*math.Abs(cos) + h*math.Abs(sin)))
	dh := fitDim(scale * (w*math.Abs(sin) + h*math.Abs(cos)))
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))

	// Source centre maps to destination centre. With y pointing down, a
	// counter-clockwise turn is x' = cos*x + sin*y, y' = -sin*x + cos*y.
	sx := float64(sb.Min.X) + w/2
	sy := float64(sb.Min.Y) + h/2
	a, b := scale*cos, scale*sin
	d, e := -scale*sin, scale*cos
	s2d := f64.Aff3{
		a, b, float64(dw)/2 - (a*sx + b*sy),
		d, e, float64(dh)/2 - (d*sx + e*sy),
	}

	draw.BiLinear.Transform(dst, s2d, src, sb, draw.Over, nil)
	return dst
}

// Flip mirrors src horizontally and/or vertically.
func Flip(src image.Image, horizontal, vertical bool) *image.RGBA {
	sb := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	for y := 0; y < sb.Dy(); y++ {
		for x := 0; x < sb.Dx(); x++ {
			tx, ty := x, y
			if horizontal {
				tx = sb.Dx() - 1 - x
			}
			if vertical {
				ty = sb.Dy() - 1 - y
			}
			dst.Set(tx, ty, src.At(sb.Min.X+x, sb.Min.Y+y))
		}
	}
	return dst
}

// fitDim rounds a transformed dimension up to whole pixels, ignoring float
// noise from trigonometry (cos 90° is not exactly 0).
func fitDim(v float64) int {
	return max(int(math.Ceil(v-1e-6)), 1)
}

package assets

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// svgToImage rasterises SVG data at the size of its view box.
func svgToImage(svgData []byte) (image.Image, error) {
	// Parse SVG; unsupported attributes are skipped rather than failing
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	width := int(math.Ceil(icon.ViewBox.W))
	height := int(math.Ceil(icon.ViewBox.H))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg has empty view box %vx%v", icon.ViewBox.W, icon.ViewBox.H)
	}
	return rasterize(icon, width, height), nil
}

// rasterize draws the icon into a new RGBA image of the given size.
func rasterize(icon *oksvg.SvgIcon, width, height int) *image.RGBA {
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	icon.Draw(raster, 1.0)

	return img
}

// Package assets resolves image assets by name. The default art ships embedded
// as SVG; a directory of PNG/JPEG/GIF/BMP/SVG files named like the embedded
// ones can be layered on top.
package assets

import (
	"embed"
	"io/fs"
)

// Asset names. Player variants are looked up by their number.
const (
	Background = "pg_bg"
	Player     = "3"
	Projectile = "beam"
	Explosion  = "explosion"
)

// Names lists every asset the game loads at startup, plus the hit variant.
var Names = []string{Background, Player, "6", Projectile, Explosion}

//go:embed fig/*.svg
var embedded embed.FS

// Embedded returns the built-in asset tree.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "fig")
	if err != nil {
		// fig is a compile-time embed path
		panic(err)
	}
	return sub
}

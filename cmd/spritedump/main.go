// Command spritedump writes every game image as a PNG, so the embedded art
// can be inspected or used as a starting point for an asset directory.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"arenashooter/assets"
)

func main() {
	out := flag.String("out", "fig", "output directory")
	src := flag.String("assets", "", "directory searched before the embedded images")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "spritedump"})

	if err := os.MkdirAll(*out, 0o755); err != nil {
		logger.Fatal("create output dir", "err", err)
	}

	l := assets.Default(*src)
	for _, name := range assets.Names {
		img, err := l.Image(name)
		if err != nil {
			logger.Fatal("load", "name", name, "err", err)
		}

		path := filepath.Join(*out, name+".png")
		if err := assets.SavePNG(img, path); err != nil {
			logger.Fatal("save", "path", path, "err", err)
		}
		logger.Info("wrote", "path", path, "size", img.Bounds().Size())
	}
}

package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"path"

	_ "golang.org/x/image/bmp"
)

// ErrNotFound is returned when no layer holds an asset with the given name.
var ErrNotFound = errors.New("asset not found")

// extensions are tried in order within each layer.
var extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".svg"}

// Loader looks names up in a stack of file systems, first layer first.
type Loader struct {
	layers []fs.FS
}

// NewLoader creates a loader over the given layers.
func NewLoader(layers ...fs.FS) *Loader {
	return &Loader{layers: layers}
}

// Default returns a loader for the embedded assets, overlaid by dir if it is
// not empty.
func Default(dir string) *Loader {
	if dir == "" {
		return NewLoader(Embedded())
	}
	return NewLoader(os.DirFS(dir), Embedded())
}

// Image loads and decodes the named asset.
func (l *Loader) Image(name string) (image.Image, error) {
	for _, layer := range l.layers {
		for _, ext := range extensions {
			file := name + ext
			data, err := fs.ReadFile(layer, file)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", file, err)
			}

			img, err := decode(file, data)
			if err != nil {
				return nil, fmt.Errorf("decode %s: %w", file, err)
			}
			return img, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func decode(file string, data []byte) (image.Image, error) {
	if path.Ext(file) == ".svg" {
		return svgToImage(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// SavePNG writes img to filename as a PNG.
func SavePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}

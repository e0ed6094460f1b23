package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in pixels
const (
	scoreFontSize  = 30
	bannerFontSize = 80
)

// Fonts holds the faces for the score line and the game-over banner.
type Fonts struct {
	Score  text.Face
	Banner text.Face
}

// LoadFonts parses the bundled Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	return &Fonts{
		Score:  &text.GoTextFace{Source: regular, Size: scoreFontSize},
		Banner: &text.GoTextFace{Source: bold, Size: bannerFontSize},
	}, nil
}

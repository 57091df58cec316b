// Package hud draws text overlays into the frame buffer.
package hud

import (
	"fmt"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

// Font returns the parsed Go Regular font shared by every overlay.
func Font() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = freetype.ParseFont(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse hud font: %w", fontErr)
		}
	})
	return goFont, fontErr
}

// Face returns a font.Face of the HUD font at size points, for widget toolkits
// that draw their own text.
func Face(size float64) (font.Face, error) {
	f, err := Font()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

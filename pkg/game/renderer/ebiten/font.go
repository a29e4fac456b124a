package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFont parses the embedded Go Mono face used for all on-screen text.
func (e *EbitenRenderer) loadFont() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	e.fontSource = src
	e.cachedFace = nil
	return nil
}

// getFace returns a cached face at the HUD size
func (e *EbitenRenderer) getFace() *text.GoTextFace {
	if e.cachedFace == nil {
		e.cachedFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   fontSize,
		}
	}
	return e.cachedFace
}

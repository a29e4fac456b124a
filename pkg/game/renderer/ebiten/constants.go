// Package ebiten provides an Ebiten-based graphical renderer for Phantom Slayer.
package ebiten

import (
	"image/color"

	"phantomslayer/pkg/game/renderer"
)

func colourOf(c renderer.Colour) color.RGBA {
	return renderer.RGBA(c)
}

// Window and frame constants
const (
	defaultScale = 3
	minScale     = 1
	maxScale     = 6
	fontSize     = 8.0
	spriteSize   = 64  // resolution sprites are pre-rendered at
	maxFrameTime = 100 // milliseconds; longer gaps are clamped
)

package devtools

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"phantomslayer/pkg/game/renderer"
	"phantomslayer/pkg/game/state"
)

// Screenshot draws the current screen off-screen at the given integer scale.
// Text is left out; only the Canvas primitives are rasterised.
func Screenshot(g *state.Game, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	r := renderer.NewRaster()
	renderer.DrawGame(r, g)

	img := image.NewRGBA(image.Rect(0, 0, renderer.ScreenWidth*scale, renderer.ScreenHeight*scale))
	for y := 0; y < renderer.ScreenHeight; y++ {
		for x := 0; x < renderer.ScreenWidth; x++ {
			c := renderer.RGBA(r.At(x, y))
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}
	return img
}

// SaveScreenshotPNG writes the current screen to a timestamped PNG in the
// working directory and returns its name.
func SaveScreenshotPNG(g *state.Game) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.png", timestamp)

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, Screenshot(g, 2)); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	return filename, nil
}

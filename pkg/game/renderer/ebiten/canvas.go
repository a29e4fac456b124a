package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"phantomslayer/pkg/game/renderer"
)

// canvas draws renderer primitives onto an ebiten image.
type canvas struct {
	dst *ebiten.Image
	e   *EbitenRenderer
}

func (c *canvas) Clear(col renderer.Colour) {
	c.dst.Fill(colourOf(col))
}

func (c *canvas) FillRect(x, y, w, h float64, col renderer.Colour) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), colourOf(col), false)
}

func (c *canvas) FillPolygon(pts []renderer.Vec, col renderer.Colour) {
	fillPolygon(c.dst, pts, col)
}

func (c *canvas) Line(x1, y1, x2, y2 float64, col renderer.Colour) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), 1, colourOf(col), false)
}

func (c *canvas) Circle(cx, cy, r float64, col renderer.Colour) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), colourOf(col), true)
}

// Sprite scales the pre-rendered sprite image into the box.
func (c *canvas) Sprite(s renderer.Sprite, x, y, w, h float64) {
	img := c.e.sprite(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/spriteSize, h/spriteSize)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

func (c *canvas) Text(s string, x, y float64, align renderer.Align, col renderer.Colour) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colourOf(col))
	switch align {
	case renderer.AlignCentre:
		op.PrimaryAlign = text.AlignCenter
	case renderer.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	text.Draw(c.dst, s, c.e.getFace(), op)
}

func fillPolygon(dst *ebiten.Image, pts []renderer.Vec, col renderer.Colour) {
	if len(pts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(colourOf(col))
	vector.FillPath(dst, &path, nil, drawOpts)
}

// sprite returns the image for s, drawing it on first use.
func (e *EbitenRenderer) sprite(s renderer.Sprite) *ebiten.Image {
	if img, ok := e.sprites[s]; ok {
		return img
	}
	img := ebiten.NewImage(spriteSize, spriteSize)
	for _, sh := range renderer.SpriteShapes(s) {
		fillPolygon(img, renderer.Place(sh.Points, 0, 0, spriteSize, spriteSize), sh.Colour)
	}
	e.sprites[s] = img
	return img
}

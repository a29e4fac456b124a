package renderer

// Shape is one filled polygon of a sprite, in unit coordinates where (0, 0)
// is the sprite's top left and (1, 1) its bottom right.
type Shape struct {
	Points []Vec
	Colour Colour
}

var phantomBody = []Vec{
	{0.5, 0}, {0.75, 0.06}, {0.92, 0.22}, {1, 0.45},
	{1, 1}, {0.83, 0.88}, {0.67, 1}, {0.5, 0.88},
	{0.33, 1}, {0.17, 0.88}, {0, 1},
	{0, 0.45}, {0.08, 0.22}, {0.25, 0.06},
}

var phantomEyes = [][]Vec{
	{{0.2, 0.3}, {0.42, 0.34}, {0.4, 0.44}, {0.22, 0.42}},
	{{0.58, 0.34}, {0.8, 0.3}, {0.78, 0.42}, {0.6, 0.44}},
}

var phantomMouth = []Vec{{0.3, 0.6}, {0.7, 0.6}, {0.62, 0.7}, {0.38, 0.7}}

// SpriteShapes returns the polygons that make up s, back to front.
func SpriteShapes(s Sprite) []Shape {
	body := ColourPhantom
	if s == SpritePhantomZapped {
		body = ColourPhantomZapped
	}
	shapes := []Shape{{Points: phantomBody, Colour: body}}
	for _, eye := range phantomEyes {
		shapes = append(shapes, Shape{Points: eye, Colour: ColourPhantomEye})
	}
	return append(shapes, Shape{Points: phantomMouth, Colour: ColourPhantomEye})
}

// Place maps unit-space points into the box at (x, y) sized w by h.
func Place(pts []Vec, x, y, w, h float64) []Vec {
	out := make([]Vec, len(pts))
	for i, p := range pts {
		out[i] = Vec{X: x + p.X*w, Y: y + p.Y*h}
	}
	return out
}

// DrawSpriteShapes draws s with plain polygon fills, for canvases without
// image support.
func DrawSpriteShapes(c Canvas, s Sprite, x, y, w, h float64) {
	for _, sh := range SpriteShapes(s) {
		c.FillPolygon(Place(sh.Points, x, y, w, h), sh.Colour)
	}
}

package renderer

import (
	"math"
	"sort"
)

// TextRun is text handed to a Raster. Rasters keep text aside for the
// backend to lay out in its own character grid.
type TextRun struct {
	S     string
	X, Y  float64
	Align Align
	Col   Colour
}

// Raster is a software Canvas over a ScreenWidth x ScreenHeight buffer of
// palette entries.
type Raster struct {
	Pix   [ScreenHeight][ScreenWidth]Colour
	Texts []TextRun
}

// NewRaster returns a cleared raster.
func NewRaster() *Raster {
	return &Raster{}
}

// At returns the colour of pixel (x, y), or the background off the buffer.
func (r *Raster) At(x, y int) Colour {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return ColourBackground
	}
	return r.Pix[y][x]
}

func (r *Raster) set(x, y int, c Colour) {
	if x < 0 || y < 0 || x >= ScreenWidth || y >= ScreenHeight {
		return
	}
	r.Pix[y][x] = c
}

func (r *Raster) Clear(c Colour) {
	for y := range r.Pix {
		for x := range r.Pix[y] {
			r.Pix[y][x] = c
		}
	}
	r.Texts = r.Texts[:0]
}

func (r *Raster) FillRect(x, y, w, h float64, c Colour) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := int(math.Round(x)), int(math.Round(y))
	x1, y1 := int(math.Round(x+w)), int(math.Round(y+h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			r.set(px, py, c)
		}
	}
}

// FillPolygon fills with the even-odd rule, sampling pixel centres.
func (r *Raster) FillPolygon(pts []Vec, c Colour) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	xs := make([]float64, 0, len(pts))
	for py := int(math.Floor(minY)); py <= int(math.Ceil(maxY)); py++ {
		sy := float64(py) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			xs = append(xs, a.X+(sy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := int(math.Ceil(xs[i] - 0.5))
			to := int(math.Floor(xs[i+1] - 0.5))
			for px := from; px <= to; px++ {
				r.set(px, py, c)
			}
		}
	}
}

func (r *Raster) Line(x1, y1, x2, y2 float64, c Colour) {
	dx, dy := x2-x1, y2-y1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		r.set(int(math.Floor(x1)), int(math.Floor(y1)), c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.set(int(math.Floor(x1+dx*t)), int(math.Floor(y1+dy*t)), c)
	}
}

func (r *Raster) Circle(cx, cy, rad float64, c Colour) {
	for py := int(math.Floor(cy - rad)); py <= int(math.Ceil(cy+rad)); py++ {
		for px := int(math.Floor(cx - rad)); px <= int(math.Ceil(cx+rad)); px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= rad*rad {
				r.set(px, py, c)
			}
		}
	}
}

func (r *Raster) Sprite(s Sprite, x, y, w, h float64) {
	DrawSpriteShapes(r, s, x, y, w, h)
}

func (r *Raster) Text(s string, x, y float64, align Align, c Colour) {
	r.Texts = append(r.Texts, TextRun{S: s, X: x, Y: y, Align: align, Col: c})
}

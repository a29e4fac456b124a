package renderer

import (
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/phantom"
	"phantomslayer/pkg/game/state"
)

// Rect is one perspective frame: the outline of a corridor cross-section
// relative to the top of the view. Spot is the sideways offset applied to a
// Phantom sprite standing in the frame when several share the corridor.
type Rect struct {
	X, Y, W, H float64
	Spot       float64
}

// Rects holds the nested cross-sections, nearest first. Frame f spans
// Rects[f] (outer) to Rects[f+1] (inner).
var Rects = [world.MaxViewRange + 2]Rect{
	{0, 0, 240, 160, 60},
	{20, 10, 200, 140, 50},
	{44, 20, 152, 120, 38},
	{66, 30, 108, 100, 26},
	{88, 40, 64, 80, 20},
	{102, 46, 36, 68, 8},
	{114, 50, 12, 58, 2},
}

// View is everything the 3D renderer needs to draw one viewpoint.
type View struct {
	Grid       *world.Grid
	From       world.Point
	Facing     world.Direction
	Teleporter world.Point
	Phantoms   *phantom.Roster
	Zapped     int // roster slot drawn as zapped, or -1
}

// PlayerView looks through the player's eyes, or Phantom 0's in chase mode.
func PlayerView(g *state.Game) View {
	v := View{
		Grid:       g.Grid,
		From:       g.Player.Pos(),
		Facing:     g.Player.Facing,
		Teleporter: g.Teleporter,
		Phantoms:   g.Phantoms,
		Zapped:     -1,
	}
	if g.Defeated.Active {
		v.Zapped = g.Defeated.Slot
	}
	if g.ChaseMode {
		if p := g.Phantoms.Slot(0); p != nil {
			if pos, ok := p.Position(); ok {
				v.From = pos
				v.Facing = p.Facing
			}
		}
	}
	return v
}

// Section describes one frame of the corridor.
type Section struct {
	Index      int
	Square     world.Point
	LeftOpen   bool
	RightOpen  bool
	Teleporter bool
	Far        bool // end of the visible corridor
	Infinite   bool // the corridor runs on past the drawable range
}

// Sections lists the frames of v from the furthest visible square back to
// the viewer's own square.
func Sections(v View) []Section {
	depth := v.Grid.ViewDistance(v.From.X, v.From.Y, v.Facing)
	line := v.Grid.Sightline(v.From.X, v.From.Y, v.Facing)
	left, right := v.Facing.Sides()

	out := make([]Section, 0, depth+1)
	for f := depth; f >= 0; f-- {
		sq := line[f]
		s := Section{
			Index:      f,
			Square:     sq,
			LeftOpen:   v.Grid.ViewDistance(sq.X, sq.Y, left) > 0,
			RightOpen:  v.Grid.ViewDistance(sq.X, sq.Y, right) > 0,
			Teleporter: sq == v.Teleporter,
			Far:        f == depth,
		}
		if s.Far && f == world.MaxViewRange {
			next := sq.Step(v.Facing)
			s.Infinite = v.Grid.IsClear(next.X, next.Y)
		}
		out = append(out, s)
	}
	return out
}

// Render draws the corridor seen from v, far to near, with any Phantoms
// standing in it. It returns the sections drawn.
//
// Each section's Phantoms are drawn right after that section's walls.
// Nearer sections only paint the side strips, so the result matches a
// separate sprite pass after all the walls.
func Render(c Canvas, v View) []Section {
	sections := Sections(v)

	inView := 0
	if v.Phantoms != nil {
		for _, s := range sections {
			if _, ok := v.Phantoms.At(s.Square); ok {
				inView++
			}
		}
	}

	drawn := 0
	for _, s := range sections {
		drawSection(c, s)
		if inView == 0 {
			continue
		}
		slot, ok := v.Phantoms.At(s.Square)
		if !ok {
			continue
		}
		sprite := SpritePhantom
		if slot == v.Zapped {
			sprite = SpritePhantomZapped
		}
		drawPhantom(c, s.Index, SpriteOffset(drawn, inView), sprite)
		drawn++
	}
	return sections
}

// SpriteOffset returns the sideways placement of the n-th Phantom drawn when
// count share the corridor: -1 left, 1 right, 0 centred.
func SpriteOffset(n, count int) float64 {
	if count < 2 {
		return 0
	}
	switch n {
	case 0:
		return -1
	case 1:
		return 1
	}
	return 0
}

func drawSection(c Canvas, s Section) {
	o := Rects[s.Index]
	i := Rects[s.Index+1]

	if s.Teleporter {
		c.FillPolygon([]Vec{
			{o.X, ViewTop + o.Y + o.H},
			{o.X + o.W, ViewTop + o.Y + o.H},
			{i.X + i.W, ViewTop + i.Y + i.H},
			{i.X, ViewTop + i.Y + i.H},
		}, ColourTeleporter)
	}

	drawLeftWall(c, o, i, s.LeftOpen)
	drawRightWall(c, o, i, s.RightOpen)

	if s.Far {
		if s.Infinite {
			drawInfinity(c, i)
			return
		}
		c.FillRect(i.X, ViewTop+i.Y, i.W, i.H, ColourFarWall)
		return
	}
	c.Line(i.X-1, ViewTop+i.Y+i.H, i.X+i.W+1, ViewTop+i.Y+i.H, ColourFloorLine)
}

// An open side shows the end wall of the side passage; a closed side is the
// slanted corridor wall.
func drawLeftWall(c Canvas, o, i Rect, open bool) {
	c.FillRect(o.X, ViewTop+i.Y, i.X-o.X-1, i.H, ColourWall)
	if open {
		return
	}
	c.FillPolygon([]Vec{
		{o.X, ViewTop + o.Y},
		{i.X, ViewTop + i.Y},
		{o.X, ViewTop + i.Y},
	}, ColourWall)
	c.FillPolygon([]Vec{
		{o.X, ViewTop + i.Y + i.H},
		{i.X, ViewTop + i.Y + i.H},
		{o.X, ViewTop + o.Y + o.H},
	}, ColourWall)
	c.Line(i.X-1, ViewTop+i.Y, i.X-1, ViewTop+i.Y+i.H, ColourWallEdge)
}

func drawRightWall(c Canvas, o, i Rect, open bool) {
	xi := i.X + i.W
	xo := o.X + o.W
	c.FillRect(xi+1, ViewTop+i.Y, xo-xi-1, i.H, ColourWall)
	if open {
		return
	}
	c.FillPolygon([]Vec{
		{xo, ViewTop + o.Y},
		{xi, ViewTop + i.Y},
		{xo, ViewTop + i.Y},
	}, ColourWall)
	c.FillPolygon([]Vec{
		{xo, ViewTop + i.Y + i.H},
		{xi, ViewTop + i.Y + i.H},
		{xo, ViewTop + o.Y + o.H},
	}, ColourWall)
	c.Line(xi+1, ViewTop+i.Y, xi+1, ViewTop+i.Y+i.H, ColourWallEdge)
}

// drawInfinity marks a corridor that carries on out of range with a
// chevron pointing into the distance.
func drawInfinity(c Canvas, r Rect) {
	cx := r.X + r.W/2
	top := ViewTop + r.Y + r.H/4
	bottom := ViewTop + r.Y + r.H*3/4
	c.FillPolygon([]Vec{
		{r.X, bottom},
		{cx, top},
		{r.X + r.W, bottom},
		{cx, top + r.H/4},
	}, ColourFarWall)
}

// drawPhantom scales the sprite to the frame it stands in and sits it on
// that frame's floor line.
func drawPhantom(c Canvas, frame int, offset float64, s Sprite) {
	r := Rects[frame+1]
	h := r.H * 0.8
	w := h * 0.6
	cx := ScreenWidth/2 + offset*Rects[frame].Spot
	c.Sprite(s, cx-w/2, ViewTop+r.Y+r.H-h, w, h)
}

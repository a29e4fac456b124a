package renderer

import (
	"math"
	"testing"

	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/phantom"
	"phantomslayer/pkg/game/state"
)

type op struct {
	kind   string
	colour Colour
	sprite Sprite
	x, y   float64
	w, h   float64
	text   string
}

// recorder is a Canvas that remembers every call.
type recorder struct {
	ops []op
}

func (r *recorder) Clear(c Colour) { r.ops = append(r.ops, op{kind: "clear", colour: c}) }
func (r *recorder) FillRect(x, y, w, h float64, c Colour) {
	r.ops = append(r.ops, op{kind: "rect", colour: c, x: x, y: y, w: w, h: h})
}
func (r *recorder) FillPolygon(pts []Vec, c Colour) {
	r.ops = append(r.ops, op{kind: "poly", colour: c})
}
func (r *recorder) Line(x1, y1, x2, y2 float64, c Colour) {
	r.ops = append(r.ops, op{kind: "line", colour: c, x: x1, y: y1, w: x2 - x1, h: y2 - y1})
}
func (r *recorder) Circle(cx, cy, rad float64, c Colour) {
	r.ops = append(r.ops, op{kind: "circle", colour: c, x: cx, y: cy})
}
func (r *recorder) Sprite(s Sprite, x, y, w, h float64) {
	r.ops = append(r.ops, op{kind: "sprite", sprite: s, x: x, y: y, w: w, h: h})
}
func (r *recorder) Text(s string, x, y float64, align Align, c Colour) {
	r.ops = append(r.ops, op{kind: "text", colour: c, x: x, y: y, text: s})
}

func (r *recorder) count(kind string, c Colour) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind && o.colour == c {
			n++
		}
	}
	return n
}

func (r *recorder) sprites() []op {
	var out []op
	for _, o := range r.ops {
		if o.kind == "sprite" {
			out = append(out, o)
		}
	}
	return out
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// corridorView opens length squares east of (2, 5) and looks down them.
func corridorView(t *testing.T, length int) View {
	t.Helper()
	grid := world.NewGrid()
	for x := 2; x <= 2+length; x++ {
		grid.SetTile(x, 5, world.Clear)
	}
	return View{
		Grid:       grid,
		From:       world.Point{X: 2, Y: 5},
		Facing:     world.East,
		Teleporter: world.Point{X: -1, Y: -1},
		Phantoms:   phantom.NewRoster(),
		Zapped:     -1,
	}
}

func TestRender_FrameCountAndFarWall(t *testing.T) {
	for n := 0; n <= world.MaxViewRange; n++ {
		v := corridorView(t, n)
		rec := &recorder{}
		sections := Render(rec, v)

		if len(sections) != n+1 {
			t.Fatalf("len(Render(corridor %d)) = %d, want %d", n, len(sections), n+1)
		}
		for i, s := range sections {
			wantFar := i == 0
			if s.Far != wantFar {
				t.Errorf("corridor %d section %d Far = %v, want %v", n, i, s.Far, wantFar)
			}
			if s.Index != n-i {
				t.Errorf("corridor %d section %d Index = %d, want %d", n, i, s.Index, n-i)
			}
		}
		if got := rec.count("rect", ColourFarWall); got != 1 {
			t.Errorf("corridor %d far walls = %d, want 1", n, got)
		}
		if got := rec.count("line", ColourFloorLine); got != n {
			t.Errorf("corridor %d floor lines = %d, want %d", n, got, n)
		}
	}
}

func TestRender_CorridorBeyondRangeIsInfinite(t *testing.T) {
	v := corridorView(t, world.MaxViewRange+3)
	rec := &recorder{}
	sections := Render(rec, v)

	if len(sections) != world.MaxViewRange+1 {
		t.Fatalf("len(sections) = %d, want %d", len(sections), world.MaxViewRange+1)
	}
	if !sections[0].Infinite {
		t.Error("far section Infinite = false, want true")
	}
	if got := rec.count("rect", ColourFarWall); got != 0 {
		t.Errorf("far wall rects = %d, want 0", got)
	}
	if got := rec.count("poly", ColourFarWall); got != 1 {
		t.Errorf("chevrons = %d, want 1", got)
	}
}

func TestSections_SideOpenings(t *testing.T) {
	v := corridorView(t, 4)
	v.Grid.SetTile(4, 4, world.Clear) // north of the second square out
	v.Grid.SetTile(5, 6, world.Clear) // south of the third

	for _, s := range Sections(v) {
		wantLeft := s.Index == 2
		wantRight := s.Index == 3
		if s.LeftOpen != wantLeft || s.RightOpen != wantRight {
			t.Errorf("section %d open = (%v, %v), want (%v, %v)",
				s.Index, s.LeftOpen, s.RightOpen, wantLeft, wantRight)
		}
	}
}

func TestRender_ClosedWallsAddSlants(t *testing.T) {
	closed := corridorView(t, 1)
	recClosed := &recorder{}
	Render(recClosed, closed)

	open := corridorView(t, 1)
	open.Grid.SetTile(2, 4, world.Clear)
	open.Grid.SetTile(2, 6, world.Clear)
	recOpen := &recorder{}
	Render(recOpen, open)

	// two sections, two sides, two triangles per closed side
	if got := recClosed.count("poly", ColourWall); got != 8 {
		t.Errorf("closed corridor slants = %d, want 8", got)
	}
	if got := recOpen.count("poly", ColourWall); got != 4 {
		t.Errorf("corridor with open viewer square slants = %d, want 4", got)
	}
}

func TestRender_TeleporterMarked(t *testing.T) {
	v := corridorView(t, 3)
	v.Teleporter = world.Point{X: 4, Y: 5}
	rec := &recorder{}
	for _, s := range Render(rec, v) {
		if s.Teleporter != (s.Index == 2) {
			t.Errorf("section %d Teleporter = %v", s.Index, s.Teleporter)
		}
	}
	if got := rec.count("poly", ColourTeleporter); got != 1 {
		t.Errorf("teleporter tiles = %d, want 1", got)
	}
}

func TestRender_PhantomSprites(t *testing.T) {
	t.Run("single centred", func(t *testing.T) {
		v := corridorView(t, 5)
		v.Phantoms.Slot(0).SetPosition(world.Point{X: 5, Y: 5})
		rec := &recorder{}
		Render(rec, v)

		sp := rec.sprites()
		if len(sp) != 1 {
			t.Fatalf("sprites = %d, want 1", len(sp))
		}
		if mid := sp[0].x + sp[0].w/2; !near(mid, ScreenWidth/2) {
			t.Errorf("sprite centre = %v, want %v", mid, ScreenWidth/2)
		}
		r := Rects[4]
		if bottom := sp[0].y + sp[0].h; !near(bottom, ViewTop+r.Y+r.H) {
			t.Errorf("sprite bottom = %v, want %v", bottom, ViewTop+r.Y+r.H)
		}
	})

	t.Run("nearer sprites are larger and drawn later", func(t *testing.T) {
		v := corridorView(t, 5)
		v.Phantoms.Slot(0).SetPosition(world.Point{X: 3, Y: 5})
		v.Phantoms.Slot(1).SetPosition(world.Point{X: 6, Y: 5})
		rec := &recorder{}
		Render(rec, v)

		sp := rec.sprites()
		if len(sp) != 2 {
			t.Fatalf("sprites = %d, want 2", len(sp))
		}
		if sp[0].h >= sp[1].h {
			t.Errorf("far sprite h = %v, near h = %v, want far smaller", sp[0].h, sp[1].h)
		}
		if sp[0].x+sp[0].w/2 >= ScreenWidth/2 {
			t.Error("first sprite should sit left of centre")
		}
		if sp[1].x+sp[1].w/2 <= ScreenWidth/2 {
			t.Error("second sprite should sit right of centre")
		}
	})

	t.Run("zapped slot", func(t *testing.T) {
		v := corridorView(t, 5)
		v.Phantoms.Slot(2).SetPosition(world.Point{X: 4, Y: 5})
		v.Zapped = 2
		rec := &recorder{}
		Render(rec, v)
		if sp := rec.sprites(); len(sp) != 1 || sp[0].sprite != SpritePhantomZapped {
			t.Errorf("sprites = %+v, want one zapped", sp)
		}
	})
}

func TestSpriteOffset(t *testing.T) {
	tests := []struct {
		n, count int
		want     float64
	}{
		{0, 1, 0},
		{0, 2, -1},
		{1, 2, 1},
		{0, 3, -1},
		{1, 3, 1},
		{2, 3, 0},
	}
	for _, tt := range tests {
		if got := SpriteOffset(tt.n, tt.count); got != tt.want {
			t.Errorf("SpriteOffset(%d, %d) = %v, want %v", tt.n, tt.count, got, tt.want)
		}
	}
}

func TestPlayerView_ChaseMode(t *testing.T) {
	g := state.NewGame(rng.New(1))
	g.Player = state.Player{X: 3, Y: 3, Facing: world.North}
	g.Phantoms.Slot(0).SetPosition(world.Point{X: 8, Y: 9})
	g.Phantoms.Slot(0).Facing = world.West

	if v := PlayerView(g); v.From != g.Player.Pos() || v.Facing != world.North {
		t.Errorf("PlayerView() = %v %v, want player's", v.From, v.Facing)
	}
	g.ChaseMode = true
	if v := PlayerView(g); v.From != (world.Point{X: 8, Y: 9}) || v.Facing != world.West {
		t.Errorf("PlayerView() chase = %v %v, want phantom 0's", v.From, v.Facing)
	}
}

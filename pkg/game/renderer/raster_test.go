package renderer

import (
	"testing"

	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
	"phantomslayer/pkg/game/state"
	"phantomslayer/pkg/game/text"
)

func TestRaster_FillRect(t *testing.T) {
	r := NewRaster()
	r.FillRect(10, 20, 5, 3, ColourWall)

	tests := []struct {
		x, y int
		want Colour
	}{
		{10, 20, ColourWall},
		{14, 22, ColourWall},
		{15, 22, ColourBackground},
		{14, 23, ColourBackground},
		{9, 20, ColourBackground},
		{-1, -1, ColourBackground},
	}
	for _, tt := range tests {
		if got := r.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRaster_FillPolygon(t *testing.T) {
	r := NewRaster()
	// right triangle with the right angle at (0, 0)
	r.FillPolygon([]Vec{{0, 0}, {20, 0}, {0, 20}}, ColourTeleporter)

	if got := r.At(2, 2); got != ColourTeleporter {
		t.Errorf("At(2, 2) = %v, want inside", got)
	}
	if got := r.At(18, 18); got != ColourBackground {
		t.Errorf("At(18, 18) = %v, want outside", got)
	}
	if got := r.At(0, 19); got != ColourTeleporter {
		t.Errorf("At(0, 19) = %v, want inside", got)
	}
}

func TestRaster_ClearDropsText(t *testing.T) {
	r := NewRaster()
	r.Text("hello", 0, 0, AlignLeft, ColourText)
	r.Clear(ColourFlash)
	if len(r.Texts) != 0 {
		t.Errorf("len(Texts) = %d, want 0", len(r.Texts))
	}
	if got := r.At(239, 239); got != ColourFlash {
		t.Errorf("At(239, 239) = %v, want %v", got, ColourFlash)
	}
}

func TestRaster_RenderDeadEnd(t *testing.T) {
	v := corridorView(t, 1)
	r := NewRaster()
	Render(r, v)

	// The far wall of a one-square corridor fills the middle of the view.
	far := Rects[2]
	cx := int(far.X + far.W/2)
	cy := int(ViewTop + far.Y + far.H/2)
	if got := r.At(cx, cy); got != ColourFarWall {
		t.Errorf("At(%d, %d) = %v, want far wall", cx, cy, got)
	}
	// The closed left wall reaches the screen edge halfway down.
	if got := r.At(2, ViewTop+80); got != ColourWall {
		t.Errorf("At(2, %d) = %v, want wall", ViewTop+80, got)
	}
}

func TestDrawGame_States(t *testing.T) {
	hasText := func(rec *recorder, s string) bool {
		for _, o := range rec.ops {
			if o.kind == "text" && o.text == s {
				return true
			}
		}
		return false
	}

	t.Run("offer help shows title", func(t *testing.T) {
		g := state.NewGame(rng.New(1))
		rec := &recorder{}
		DrawGame(rec, g)
		if !hasText(rec, text.Get("TITLE")) {
			t.Error("title missing")
		}
	})

	t.Run("armed laser shows reticule", func(t *testing.T) {
		g := state.NewGame(rng.New(1))
		g.Grid = corridorView(t, 3).Grid
		g.Player = state.Player{X: 2, Y: 5, Facing: world.East}
		g.SetState(state.InPlay)
		g.Laser.ShowReticule = true

		rec := &recorder{}
		DrawGame(rec, g)
		if got := rec.count("line", ColourReticule); got != 2 {
			t.Errorf("reticule lines = %d, want 2", got)
		}
	})

	t.Run("map mode draws the maze from above", func(t *testing.T) {
		g := state.NewGame(rng.New(1))
		g.Grid = corridorView(t, 3).Grid
		g.Player = state.Player{X: 2, Y: 5, Facing: world.East}
		g.SetState(state.InPlay)
		g.MapMode = true

		rec := &recorder{}
		DrawGame(rec, g)
		if got := rec.count("rect", ColourMapFloor); got != 4 {
			t.Errorf("floor squares = %d, want 4", got)
		}
		if got := rec.count("poly", ColourMapPlayer); got != 1 {
			t.Errorf("player arrows = %d, want 1", got)
		}
	})

	t.Run("dead waits for a key", func(t *testing.T) {
		g := state.NewGame(rng.New(1))
		g.SetState(state.PlayerDeadNextGame)
		rec := &recorder{}
		DrawGame(rec, g)
		if !hasText(rec, text.Get("PLAYER_DEAD")) || !hasText(rec, text.Get("ANY_KEY")) {
			t.Error("death screen text missing")
		}
	})
}

package world

import (
	"strings"
	"testing"

	"phantomslayer/pkg/engine/rng"
)

// openGrid returns a grid with every square clear.
func openGrid(t *testing.T) *Grid {
	t.Helper()
	rows := make([]string, Size)
	for i := range rows {
		rows[i] = strings.Repeat(".", Size)
	}
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func TestTileAt_OutOfBoundsIsWall(t *testing.T) {
	g := openGrid(t)
	cases := []struct {
		name string
		x, y int
	}{
		{"x past edge", Size, 0},
		{"y past edge", 0, Size},
		{"both past edge", 25, 40},
		{"negative x", -1, 5},
		{"negative y", 5, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.TileAt(tc.x, tc.y); got != Wall {
				t.Errorf("TileAt(%d, %d) = %v, want Wall", tc.x, tc.y, got)
			}
		})
	}
}

func TestTileAt_AllOutOfRangeCoordinates(t *testing.T) {
	g := openGrid(t)
	for x := 0; x < 30; x++ {
		for y := 0; y < 30; y++ {
			if x <= MapMax && y <= MapMax {
				continue
			}
			if g.TileAt(x, y) != Wall {
				t.Fatalf("TileAt(%d, %d) = Clear, want Wall", x, y)
			}
		}
	}
}

func TestTileAt_NilGrid(t *testing.T) {
	var g *Grid
	if got := g.TileAt(3, 3); got != Wall {
		t.Errorf("nil TileAt(3, 3) = %v, want Wall", got)
	}
}

func TestParseGrid_Errors(t *testing.T) {
	if _, err := ParseGrid([]string{"...."}); err == nil {
		t.Error("ParseGrid(1 row) error = nil, want error")
	}
	rows := make([]string, Size)
	for i := range rows {
		rows[i] = strings.Repeat(".", Size)
	}
	rows[3] = strings.Repeat("x", Size)
	if _, err := ParseGrid(rows); err == nil {
		t.Error("ParseGrid(bad symbol) error = nil, want error")
	}
}

func TestSetTile(t *testing.T) {
	g := openGrid(t)
	if !g.SetTile(4, 5, Wall) {
		t.Fatal("SetTile(4, 5) = false, want true")
	}
	if g.TileAt(4, 5) != Wall {
		t.Error("TileAt(4, 5) after SetTile = Clear, want Wall")
	}
	if g.SetTile(20, 0, Wall) {
		t.Error("SetTile(20, 0) = true, want false")
	}
}

func TestLayouts_Shape(t *testing.T) {
	if NumberOfLayouts() < 6 {
		t.Fatalf("NumberOfLayouts() = %d, want >= 6", NumberOfLayouts())
	}
	for id := 0; id < NumberOfLayouts(); id++ {
		g, err := LoadLayout(id)
		if err != nil {
			t.Fatalf("LoadLayout(%d): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("LoadLayout(%d).ID() = %d", id, g.ID())
		}
		centre := 0
		for y := 8; y <= 10; y++ {
			for x := 8; x <= 10; x++ {
				if g.IsClear(x, y) {
					centre++
				}
			}
		}
		if centre == 0 {
			t.Errorf("layout %d has no clear square around the centre", id)
		}
	}
}

func TestLoadLayout_OutOfRange(t *testing.T) {
	if _, err := LoadLayout(NumberOfLayouts()); err == nil {
		t.Error("LoadLayout(n) error = nil, want error")
	}
}

func TestSelectLayout_NeverRepeats(t *testing.T) {
	src := rng.New(7)
	prev := NoLayout
	for i := 0; i < 200; i++ {
		g := SelectLayout(prev, src)
		if g.ID() == prev {
			t.Fatalf("SelectLayout(%d) returned the previous layout", prev)
		}
		prev = g.ID()
	}
}

func TestSelectLayout_SkipsPrevious(t *testing.T) {
	// A draw of 2 out of the 5 remaining layouts, with 1 excluded, maps to id 3.
	g := SelectLayout(1, NewTestSource(2))
	if g.ID() != 3 {
		t.Errorf("SelectLayout(1) with draw 2 = %d, want 3", g.ID())
	}
	g = SelectLayout(4, NewTestSource(2))
	if g.ID() != 2 {
		t.Errorf("SelectLayout(4) with draw 2 = %d, want 2", g.ID())
	}
}

func NewTestSource(values ...int) rng.Source {
	return rng.NewSequence(values...)
}

func TestOpenExits(t *testing.T) {
	g := NewGrid()
	g.SetTile(5, 5, Clear)
	g.SetTile(5, 4, Clear)
	g.SetTile(6, 5, Clear)
	got := g.OpenExits(5, 5)
	want := ExitNorth | ExitEast
	if got != want {
		t.Errorf("OpenExits(5, 5) = %v, want %v", got, want)
	}
}

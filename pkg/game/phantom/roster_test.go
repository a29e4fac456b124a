package phantom

import (
	"testing"
	"time"

	"phantomslayer/pkg/engine/rng"
	"phantomslayer/pkg/engine/world"
)

func TestPlace_RespectsGapAndOccupancy(t *testing.T) {
	src := rng.New(1)
	for id := 0; id < world.NumberOfLayouts(); id++ {
		g, err := world.LoadLayout(id)
		if err != nil {
			t.Fatalf("LoadLayout(%d): %v", id, err)
		}
		player := pt(9, 9)
		r := NewRoster()
		for i := 0; i < MaxPhantoms; i++ {
			if !r.Spawn(i, 3, g, player, src) {
				t.Fatalf("layout %d: Spawn(%d) = false", id, i)
			}
		}
		seen := map[world.Point]bool{}
		for i := 0; i < MaxPhantoms; i++ {
			pos, ok := r.Slot(i).Position()
			if !ok {
				t.Fatalf("layout %d slot %d off-board after Spawn", id, i)
			}
			if !g.IsClear(pos.X, pos.Y) {
				t.Errorf("layout %d slot %d on wall at %v", id, i, pos)
			}
			if abs(pos.X-player.X) < MinPlacementGap || abs(pos.Y-player.Y) < MinPlacementGap {
				t.Errorf("layout %d slot %d at %v too close to player", id, i, pos)
			}
			if seen[pos] {
				t.Errorf("layout %d: two Phantoms at %v", id, pos)
			}
			seen[pos] = true
		}
	}
}

func TestPlace_FallsBackWhenNoDistantSquare(t *testing.T) {
	g := carve(t, pt(9, 9), pt(10, 9), pt(11, 9))
	r := NewRoster()
	if !r.Place(0, g, pt(9, 9), rng.New(3)) {
		t.Fatal("Place() = false, want fallback placement")
	}
	pos, _ := r.Slot(0).Position()
	if pos == pt(9, 9) || !g.IsClear(pos.X, pos.Y) {
		t.Errorf("fallback placed at %v", pos)
	}
}

func TestAdvanceAll_ShortCircuitsOnCapture(t *testing.T) {
	g := carve(t, pt(5, 5), pt(6, 5), pt(7, 5), pt(8, 5))
	r := NewRoster()
	r.Slot(0).SetPosition(pt(8, 5))
	r.Slot(1).SetPosition(pt(5, 5))
	r.Slot(2).SetPosition(pt(7, 5))

	captured, slot := r.AdvanceAll(g, pt(5, 5), rng.NewSequence(0))
	if !captured || slot != 1 {
		t.Fatalf("AdvanceAll() = %v, %d, want true, 1", captured, slot)
	}
	if pos, _ := r.Slot(0).Position(); pos != pt(8, 5) {
		t.Errorf("slot 0 moved to %v, blocked by slot 2 so want 8,5", pos)
	}
	if pos, _ := r.Slot(2).Position(); pos != pt(7, 5) {
		t.Errorf("slot 2 moved to %v after capture, want 7,5", pos)
	}
}

func TestAdvanceAll_NoCapture(t *testing.T) {
	g := carve(t, pt(2, 5), pt(3, 5), pt(4, 5), pt(5, 5))
	r := NewRoster()
	r.Slot(0).SetPosition(pt(5, 5))
	captured, _ := r.AdvanceAll(g, pt(2, 5), rng.NewSequence(0))
	if captured {
		t.Fatal("AdvanceAll() captured = true, want false")
	}
	if pos, _ := r.Slot(0).Position(); pos != pt(4, 5) {
		t.Errorf("slot 0 at %v, want 4,5", pos)
	}
}

func TestAtAndClear(t *testing.T) {
	r := NewRoster()
	r.Slot(2).SetPosition(pt(3, 4))
	if i, ok := r.At(pt(3, 4)); !ok || i != 2 {
		t.Errorf("At(3,4) = %d, %v, want 2, true", i, ok)
	}
	if got := r.OnBoard(); len(got) != 1 || got[0] != 2 {
		t.Errorf("OnBoard() = %v, want [2]", got)
	}
	r.Clear()
	if _, ok := r.At(pt(3, 4)); ok {
		t.Error("At(3,4) after Clear ok = true")
	}
	if r.Slot(MaxPhantoms) != nil || r.Slot(-1) != nil {
		t.Error("Slot out of range returned non-nil")
	}
}

func TestWithinSquare(t *testing.T) {
	r := NewRoster()
	r.Slot(0).SetPosition(pt(13, 9))
	cases := []struct {
		radius int
		want   bool
	}{
		{1, false},
		{3, false},
		{4, true},
		{6, true},
	}
	for _, tc := range cases {
		if got := r.WithinSquare(pt(9, 9), tc.radius); got != tc.want {
			t.Errorf("WithinSquare(radius %d) = %v, want %v", tc.radius, got, tc.want)
		}
	}
}

func TestLevelTable(t *testing.T) {
	if TableLevels != 21 {
		t.Fatalf("TableLevels = %d, want 21", TableLevels)
	}
	if DataForLevel(22) != DataForLevel(21) || DataForLevel(100) != DataForLevel(21) {
		t.Error("levels beyond the table do not clamp to the last row")
	}
	if DataForLevel(0) != DataForLevel(1) {
		t.Error("level 0 does not clamp to the first row")
	}
	speeds := map[int]time.Duration{
		1:  2 * time.Second,
		3:  2 * time.Second,
		4:  time.Second,
		10: 500 * time.Millisecond,
		16: 250 * time.Millisecond,
		30: 250 * time.Millisecond,
	}
	for level, want := range speeds {
		if got := Speed(level); got != want {
			t.Errorf("Speed(%d) = %v, want %v", level, got, want)
		}
	}
	prev := DataForLevel(1)
	for level := 2; level <= TableLevels; level++ {
		d := DataForLevel(level)
		if d.MinHP < prev.MinHP || d.MaxHP < prev.MaxHP {
			t.Errorf("level %d hp range %d-%d weaker than level %d", level, d.MinHP, d.MaxHP, level-1)
		}
		prev = d
	}
}

func TestCountForLevel(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 3, 4: 3, 50: 3}
	for level, want := range cases {
		if got := CountForLevel(level); got != want {
			t.Errorf("CountForLevel(%d) = %d, want %d", level, got, want)
		}
	}
}

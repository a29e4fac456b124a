package world

import "testing"

func TestTurnCycle(t *testing.T) {
	d := North
	want := []Direction{East, South, West, North}
	for i, w := range want {
		d = d.TurnRight()
		if d != w {
			t.Fatalf("TurnRight step %d = %v, want %v", i, d, w)
		}
	}
	for _, d := range AllDirections() {
		if got := d.TurnRight().TurnLeft(); got != d {
			t.Errorf("%v.TurnRight().TurnLeft() = %v", d, got)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, got)
		}
	}
}

func TestSides(t *testing.T) {
	cases := []struct {
		facing      Direction
		left, right Direction
	}{
		{North, West, East},
		{East, North, South},
		{South, East, West},
		{West, South, North},
	}
	for _, tc := range cases {
		t.Run(tc.facing.String(), func(t *testing.T) {
			l, r := tc.facing.Sides()
			if l != tc.left || r != tc.right {
				t.Errorf("Sides() = %v, %v, want %v, %v", l, r, tc.left, tc.right)
			}
		})
	}
}

func TestExitRoundTrip(t *testing.T) {
	wantBits := map[Direction]ExitSet{North: 1, East: 2, South: 4, West: 8}
	for _, d := range AllDirections() {
		e := d.Exit()
		if e != wantBits[d] {
			t.Errorf("%v.Exit() = %d, want %d", d, e, wantBits[d])
		}
		back, ok := e.Direction()
		if !ok || back != d {
			t.Errorf("%v.Exit().Direction() = %v, %v", d, back, ok)
		}
	}
	if _, ok := (ExitNorth | ExitSouth).Direction(); ok {
		t.Error("Direction() of two exits ok = true, want false")
	}
}

func TestExitSetAlgebra(t *testing.T) {
	e := ExitNone.With(ExitNorth).With(ExitWest)
	if e.Count() != 2 {
		t.Errorf("Count() = %d, want 2", e.Count())
	}
	if !e.Has(ExitWest) || e.Has(ExitEast) {
		t.Errorf("Has on %v wrong", e)
	}
	e = e.Without(ExitNorth)
	dirs := e.Directions()
	if len(dirs) != 1 || dirs[0] != West {
		t.Errorf("Directions() = %v, want [West]", dirs)
	}
	if ExitAll.String() != "NESW" {
		t.Errorf("ExitAll.String() = %q, want NESW", ExitAll.String())
	}
}

package rng

import "testing"

func TestBetween_StaysInRange(t *testing.T) {
	src := New(42)
	for i := 0; i < 500; i++ {
		v := Between(src, 2, 6)
		if v < 2 || v > 6 {
			t.Fatalf("Between(src, 2, 6) = %d, want value in [2,6]", v)
		}
	}
}

func TestBetween_DegenerateRange(t *testing.T) {
	if got := Between(NewSequence(5), 3, 3); got != 3 {
		t.Errorf("Between(src, 3, 3) = %d, want 3", got)
	}
}

func TestSequence_Wraps(t *testing.T) {
	s := NewSequence(1, 7)
	want := []int{1, 3, 1, 3}
	for i, w := range want {
		if got := s.Intn(4); got != w {
			t.Errorf("call %d: Intn(4) = %d, want %d", i, got, w)
		}
	}
}

package core

import (
	"testing"
	"time"
)

func TestGridIndexRoundTrip(t *testing.T) {
	g := NewGrid(3, 5)
	for i := 0; i < g.Len(); i++ {
		row, col := g.Coord(i)
		if !g.Contains(row, col) || g.Index(row, col) != i {
			t.Fatalf("index %d -> (%d,%d) -> %d", i, row, col, g.Index(row, col))
		}
	}
	if g.Contains(3, 0) || g.Contains(0, -1) {
		t.Fatal("Contains accepted an outside coordinate")
	}
}

func TestGridWrap(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct{ in, row, col int }{
		{0, 0, 0}, {4, 0, 1}, {6, 2, 0}, {-1, 3, 2}, {-7, 1, 2},
	}
	for _, tc := range cases {
		if got := g.WrapRow(tc.in); got != tc.row {
			t.Fatalf("WrapRow(%d) = %d, want %d", tc.in, got, tc.row)
		}
		if got := g.WrapCol(tc.in); got != tc.col {
			t.Fatalf("WrapCol(%d) = %d, want %d", tc.in, got, tc.col)
		}
	}
}

func TestNewGridClamps(t *testing.T) {
	if g := NewGrid(0, -2); g.Rows != 1 || g.Cols != 1 {
		t.Fatalf("NewGrid(0,-2) = %+v", g)
	}
}

func TestFixedStepPacing(t *testing.T) {
	now := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return now }

	if !fs.ShouldStep() {
		t.Fatal("first call must fire")
	}
	now = now.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("fired before the interval elapsed")
	}
	now = now.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not fire after a full interval")
	}
	// A long stall yields one step, not a burst.
	now = now.Add(time.Second)
	if !fs.ShouldStep() || fs.ShouldStep() {
		t.Fatal("stalled loop must produce exactly one step")
	}
}

func TestStepResultOK(t *testing.T) {
	if !(StepResult{Step: 3}).OK() || (StepResult{Halted: true}).OK() {
		t.Fatal("OK must mirror Halted")
	}
}

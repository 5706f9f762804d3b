package rob

import (
	"testing"

	"robviz/internal/core"
)

func TestReaderVisitsEveryCellOncePerCycle(t *testing.T) {
	shapes := []core.Grid{
		core.NewGrid(1, 1),
		core.NewGrid(1, 5),
		core.NewGrid(5, 1),
		core.NewGrid(2, 2),
		core.NewGrid(3, 3),
		core.NewGrid(4, 7),
		core.NewGrid(8, 3),
		core.NewGrid(8, 16),
	}
	for _, g := range shapes {
		start := Pos{Row: g.WrapRow(3), Col: 0}
		seen := make(map[Pos]bool, g.Len())
		p := start
		for i := 0; i < g.Len(); i++ {
			if !g.Contains(p.Row, p.Col) {
				t.Fatalf("%dx%d: reader left the grid at %v", g.Rows, g.Cols, p)
			}
			if seen[p] {
				t.Fatalf("%dx%d: reader revisited %v after %d advances", g.Rows, g.Cols, p, i)
			}
			seen[p] = true
			p = nextReader(g, p)
		}
		if p != start {
			t.Fatalf("%dx%d: reader ended cycle at %v, want %v", g.Rows, g.Cols, p, start)
		}
	}
}

func TestReaderDiagonalStep(t *testing.T) {
	g := core.NewGrid(4, 4)
	cases := []struct{ from, to Pos }{
		{Pos{3, 0}, Pos{2, 1}},
		{Pos{1, 3}, Pos{0, 0}},
		{Pos{0, 3}, Pos{3, 1}},
		{Pos{0, 0}, Pos{3, 2}},
	}
	for _, tc := range cases {
		if got := nextReader(g, tc.from); got != tc.to {
			t.Fatalf("nextReader(%v) = %v, want %v", tc.from, got, tc.to)
		}
	}
}

func TestWriterWrapsColumns(t *testing.T) {
	g := core.NewGrid(2, 3)
	if got := nextWriter(g, Pos{1, 2}); got != (Pos{0, 0}) {
		t.Fatalf("writer wrap = %v, want (0,0)", got)
	}
	if got := nextWriter(g, Pos{0, 1}); got != (Pos{1, 1}) {
		t.Fatalf("writer down = %v, want (1,1)", got)
	}
}

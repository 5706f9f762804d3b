package rob

import (
	"io"
	"log"
	"slices"
	"testing"

	"robviz/internal/core"
)

func newTestLogger(w io.Writer) *log.Logger { return log.New(w, "", 0) }

func TestTrackerStampAndSet(t *testing.T) {
	tr := NewTracker(core.NewGrid(3, 2))
	p := Pos{Row: 2, Col: 1}

	tr.Stamp(p, Writing, 7)
	if got := tr.Inspect(p); got != (CellSnapshot{State: Writing, LastStep: 7, Stamped: true}) {
		t.Fatalf("after stamp: %+v", got)
	}
	tr.Set(p, Written)
	if got := tr.Inspect(p); got.State != Written || got.LastStep != 7 {
		t.Fatalf("Set without a step must keep the write step: %+v", got)
	}
	tr.Set(p, Reading)
	if tr.ColumnCount(1) != 1 {
		t.Fatalf("relabeling a non-empty cell changed the counter: %d", tr.ColumnCount(1))
	}
	tr.Set(p, Empty)
	if got := tr.Inspect(p); got.Stamped || got.LastStep != 0 {
		t.Fatalf("empty cell kept its step: %+v", got)
	}
	if tr.ColumnCount(1) != 0 {
		t.Fatalf("column count = %d, want 0", tr.ColumnCount(1))
	}
}

func TestTrackerColumnCounts(t *testing.T) {
	tr := NewTracker(core.NewGrid(3, 3))
	tr.Stamp(Pos{0, 0}, Writing, 0)
	tr.Stamp(Pos{1, 0}, Written, 1)
	tr.Stamp(Pos{2, 2}, Reading, 2)
	tr.Set(Pos{1, 1}, Empty)
	if got := tr.ColumnCounts(); !slices.Equal(got, []int{2, 0, 1}) {
		t.Fatalf("counts = %v", got)
	}
	tr.Clear()
	if got := tr.ColumnCounts(); !slices.Equal(got, []int{0, 0, 0}) {
		t.Fatalf("counts after clear = %v", got)
	}
}

func TestWindowFIFO(t *testing.T) {
	w := newWindow(2)
	if _, ok := w.Oldest(); ok {
		t.Fatal("empty window reported an oldest entry")
	}
	w.Push(Pos{0, 0})
	w.Push(Pos{1, 0})
	if w.Over() {
		t.Fatal("window at capacity reported overflow")
	}
	w.Push(Pos{2, 0})
	if !w.Over() {
		t.Fatal("window above capacity must report overflow")
	}
	if p, _ := w.Pop(); p != (Pos{0, 0}) {
		t.Fatalf("evicted %v, want (0,0)", p)
	}
	if p, _ := w.Newest(); p != (Pos{2, 0}) {
		t.Fatalf("head = %v, want (2,0)", p)
	}
	if p, _ := w.Oldest(); p != (Pos{1, 0}) {
		t.Fatalf("tail = %v, want (1,0)", p)
	}
	if !w.Contains(Pos{2, 0}) || w.Contains(Pos{0, 0}) {
		t.Fatal("Contains disagrees with window contents")
	}
	if got := w.Slice(); !slices.Equal(got, []Pos{{1, 0}, {2, 0}}) {
		t.Fatalf("slice = %v", got)
	}
}

func TestWindowStaysBoundedWithoutEviction(t *testing.T) {
	w := newWindow(1)
	for i := 0; i < 5; i++ {
		w.Push(Pos{Row: i})
	}
	if w.Len() != 2 {
		t.Fatalf("len = %d, want 2", w.Len())
	}
	if got := w.Slice(); !slices.Equal(got, []Pos{{Row: 3}, {Row: 4}}) {
		t.Fatalf("slice = %v", got)
	}
}

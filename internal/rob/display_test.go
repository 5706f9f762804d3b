package rob

import (
	"slices"
	"strings"
	"testing"
)

func TestCellsEncodeCursorRoles(t *testing.T) {
	e := mustEngine(t, Config{Rows: 2, Cols: 2, TShift: 2, ReadSize: 4})
	for i := 0; i < 4; i++ {
		e.Step()
	}
	// After step 3: (0,0),(1,0) in the window with (1,0) as head, (0,1)
	// written and (1,1) the latest write.
	want := []uint8{
		DisplayTrail, DisplayFilled, // row 0: (0,0) (0,1)
		DisplayHead, DisplayLastWritten, // row 1: (1,0) (1,1)
	}
	if got := e.Cells(); !slices.Equal(got, want) {
		t.Fatalf("cells = %v, want %v", got, want)
	}
	if len(e.Palette()) != int(DisplayHead)+1 {
		t.Fatalf("palette has %d entries", len(e.Palette()))
	}
}

func TestStatusLine(t *testing.T) {
	e := mustEngine(t, Config{Rows: 2, Cols: 2, TShift: 1, ReadSize: 2})
	if got := e.StatusLine(); got != "step:  0 | writer:   N/A   | reader:   N/A  " {
		t.Fatalf("initial status = %q", got)
	}
	e.Step()
	e.Step()
	got := e.StatusLine()
	if !strings.HasPrefix(got, "step:  2 | writer: ( 1, 0) | reader: ") {
		t.Fatalf("status = %q", got)
	}
}

func TestReportRoundTrip(t *testing.T) {
	e := mustEngine(t, Config{Rows: 2, Cols: 2, TShift: 2, ReadSize: 4})
	for e.Step().OK() {
	}
	r := e.Report()
	if !r.Halted || r.Steps != 5 || len(r.Window) != 4 {
		t.Fatalf("report = %+v", r)
	}
	b, err := MarshalReport(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), `"t_shift":2`) {
		t.Fatalf("encoded report missing t_shift: %s", b)
	}
	back, err := UnmarshalReport(b)
	if err != nil {
		t.Fatal(err)
	}
	if back.Reason != r.Reason || !slices.Equal(back.ColumnCounts, r.ColumnCounts) {
		t.Fatalf("decoded report = %+v, want %+v", back, r)
	}
}

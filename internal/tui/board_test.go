package tui

import (
	"strings"
	"testing"

	"robviz/internal/rob"
)

func TestRenderBoard(t *testing.T) {
	e, err := rob.New(rob.Config{Rows: 2, Cols: 2, TShift: 2, ReadSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		e.Step()
	}
	got := RenderBoard(e)
	want := strings.Join([]string{
		"  1 |R  1*  3",
		"  0 |r  0   2",
		"    +--------",
		"        0   1",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("board:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBoardEmpty(t *testing.T) {
	e, err := rob.New(rob.Config{Rows: 1, Cols: 3, TShift: 0, ReadSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.SplitN(RenderBoard(e), "\n", 2)[0]; got != "  0 |   .   .   ." {
		t.Fatalf("first line = %q", got)
	}
}

func TestPaneHeights(t *testing.T) {
	cases := []struct {
		maxY, rows int
		board      int
		log        bool
	}{
		{maxY: 40, rows: 8, board: 12, log: true},
		{maxY: 14, rows: 8, board: 6, log: true},
		{maxY: 10, rows: 8, board: 2, log: true},
		{maxY: 6, rows: 8, board: 2, log: false},
		{maxY: 1, rows: 1, board: 2, log: false},
	}
	for _, tc := range cases {
		board, log := paneHeights(tc.maxY, tc.rows)
		if board != tc.board || log != tc.log {
			t.Fatalf("paneHeights(%d, %d) = %d, %v, want %d, %v", tc.maxY, tc.rows, board, log, tc.board, tc.log)
		}
		if board < 1 {
			t.Fatalf("paneHeights(%d, %d): board view has no height", tc.maxY, tc.rows)
		}
	}
}

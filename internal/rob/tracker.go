package rob

import "robviz/internal/core"

type cell struct {
	state    CellState
	lastStep int
	stamped  bool
}

// Tracker holds per-cell state and the per-column count of non-empty cells.
type Tracker struct {
	grid    core.Grid
	cells   []cell
	columns []int
}

// NewTracker allocates a tracker with every cell empty.
func NewTracker(g core.Grid) *Tracker {
	return &Tracker{
		grid:    g,
		cells:   make([]cell, g.Len()),
		columns: make([]int, g.Cols),
	}
}

// Set changes the state of p without touching its write step. Setting a cell
// to Empty clears the step.
func (t *Tracker) Set(p Pos, s CellState) {
	c := &t.cells[t.grid.Index(p.Row, p.Col)]
	t.count(p.Col, c.state, s)
	c.state = s
	if s == Empty {
		c.lastStep = 0
		c.stamped = false
	}
}

// Stamp changes the state of p and records step as its last write step.
func (t *Tracker) Stamp(p Pos, s CellState, step int) {
	t.Set(p, s)
	if s == Empty {
		return
	}
	c := &t.cells[t.grid.Index(p.Row, p.Col)]
	c.lastStep = step
	c.stamped = true
}

func (t *Tracker) count(col int, from, to CellState) {
	switch {
	case from == Empty && to != Empty:
		t.columns[col]++
	case from != Empty && to == Empty:
		if t.columns[col] > 0 {
			t.columns[col]--
		}
	}
}

// State returns the state of p.
func (t *Tracker) State(p Pos) CellState {
	return t.cells[t.grid.Index(p.Row, p.Col)].state
}

// Inspect returns a snapshot of p.
func (t *Tracker) Inspect(p Pos) CellSnapshot {
	c := t.cells[t.grid.Index(p.Row, p.Col)]
	return CellSnapshot{State: c.state, LastStep: c.lastStep, Stamped: c.stamped}
}

// ColumnCount returns the number of non-empty cells in col.
func (t *Tracker) ColumnCount(col int) int { return t.columns[col] }

// ColumnCounts returns a copy of every column counter.
func (t *Tracker) ColumnCounts() []int {
	return append([]int(nil), t.columns...)
}

// Clear resets every cell to Empty.
func (t *Tracker) Clear() {
	for i := range t.cells {
		t.cells[i] = cell{}
	}
	for i := range t.columns {
		t.columns[i] = 0
	}
}

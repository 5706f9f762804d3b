package rob

import (
	"fmt"

	"robviz/internal/core"
)

// Engine owns the grid, both cursors and the clock. It is not safe for
// concurrent use; drivers call Step strictly one at a time.
type Engine struct {
	cfg     Config
	grid    core.Grid
	cells   *Tracker
	window  *window
	writer  Pos
	reader  Pos
	last    Pos
	hasLast bool

	timeStep int
	halted   bool
	reason   string

	observers []Observer
	display   []uint8
}

// New builds an engine in its initial configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := core.NewGrid(cfg.Rows, cfg.Cols)
	e := &Engine{
		cfg:    cfg,
		grid:   g,
		cells:  NewTracker(g),
		window: newWindow(cfg.ReadSize),
	}
	e.Reset()
	return e, nil
}

// Observe registers o to receive every subsequent event.
func (e *Engine) Observe(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// Reset empties the grid and returns both cursors and the clock to their
// starting values. Observers stay registered.
func (e *Engine) Reset() {
	e.cells.Clear()
	e.window.Reset()
	e.writer = Pos{}
	// The reader starts read_size rows up column 0, wrapped into the grid.
	e.reader = Pos{Row: e.grid.WrapRow(e.cfg.ReadSize), Col: 0}
	e.last = Pos{}
	e.hasLast = false
	e.timeStep = 0
	e.halted = false
	e.reason = ""
}

// Step executes one tick: the reader (once active) and then the writer. A
// halted engine is left untouched. The clock only advances on steps that
// complete, so after a halt TimeStep is the step that failed.
func (e *Engine) Step() core.StepResult {
	if e.halted {
		return e.result()
	}
	if e.timeStep >= e.cfg.TShift {
		e.advanceReader()
	}
	if !e.halted {
		e.advanceWriter()
	}
	res := e.result()
	if !e.halted {
		e.timeStep++
	}
	return res
}

func (e *Engine) result() core.StepResult {
	return core.StepResult{Step: e.timeStep, Halted: e.halted, Reason: e.reason}
}

func (e *Engine) advanceWriter() {
	pos := e.writer
	switch state := e.cells.State(pos); state {
	case Written:
		snap := e.cells.Inspect(pos)
		if snap.LastStep >= e.cfg.TShift {
			e.halt(pos, state, "writer advances to cell at %v that is %v", pos, state)
			return
		}
		e.warn(pos, state, "overwriting apparently useless cell at %v with step %d", pos, snap.LastStep)
	case Reading:
		if tail, ok := e.window.Oldest(); !ok || tail != pos {
			e.halt(pos, state, "writer advances to cell at %v that is being read and not at the tail", pos)
			return
		}
		e.warn(pos, state, "writing over the cell at %v that is currently being read", pos)
	}

	if e.hasLast && e.cells.State(e.last) == Writing {
		e.cells.Set(e.last, Written)
	}
	e.cells.Stamp(pos, Writing, e.timeStep)
	e.emit(Event{Kind: EventWrite, Step: e.timeStep, Pos: pos, State: Writing})

	e.writer = nextWriter(e.grid, pos)
	e.last = pos
	e.hasLast = true
}

func (e *Engine) advanceReader() {
	pos := e.reader
	switch state := e.cells.State(pos); state {
	case Empty:
		e.halt(pos, state, "reader advances to cell at %v that is empty", pos)
		return
	case Writing:
		e.warn(pos, state, "reading a cell that is being written at %v", pos)
	case Reading:
		e.warn(pos, state, "rereading cell at %v that is still in the window", pos)
	}

	// The previous head simply becomes trail; both are Reading.
	e.cells.Set(pos, Reading)
	e.window.Push(pos)
	e.emit(Event{Kind: EventRead, Step: e.timeStep, Pos: pos, State: Reading})

	if e.window.Over() {
		old, _ := e.window.Pop()
		// A tail the writer already took over keeps the writer's data, as
		// does a cell the reader has re-entered further up the window.
		if e.cells.State(old) == Reading && !e.window.Contains(old) {
			e.cells.Set(old, Empty)
		}
		e.emit(Event{Kind: EventEvict, Step: e.timeStep, Pos: old, State: e.cells.State(old)})
	}

	e.reader = nextReader(e.grid, pos)
}

func (e *Engine) warn(pos Pos, state CellState, format string, args ...any) {
	e.emit(Event{
		Kind:    EventWarning,
		Step:    e.timeStep,
		Pos:     pos,
		State:   state,
		Message: fmt.Sprintf(format, args...),
	})
}

func (e *Engine) halt(pos Pos, state CellState, format string, args ...any) {
	e.halted = true
	e.reason = fmt.Sprintf("rule check failed [%d]: ", e.timeStep) + fmt.Sprintf(format, args...)
	e.emit(Event{Kind: EventHalt, Step: e.timeStep, Pos: pos, State: state, Message: e.reason})
}

func (e *Engine) emit(ev Event) {
	for _, o := range e.observers {
		o.Observe(ev)
	}
}

// Halted reports whether a fatal violation has stopped the engine.
func (e *Engine) Halted() bool { return e.halted }

// Reason returns the halt message, or "" while running.
func (e *Engine) Reason() string { return e.reason }

// TimeStep returns the clock: the number of completed steps, or the step
// that halted.
func (e *Engine) TimeStep() int { return e.timeStep }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Grid returns the lattice shape.
func (e *Engine) Grid() core.Grid { return e.grid }

// Inspect returns a snapshot of the cell at p. It panics if p is outside the grid.
func (e *Engine) Inspect(p Pos) CellSnapshot {
	if !e.grid.Contains(p.Row, p.Col) {
		panic(fmt.Sprintf("rob: position %v outside %dx%d grid", p, e.grid.Rows, e.grid.Cols))
	}
	return e.cells.Inspect(p)
}

// WriterPosition returns the cell the writer will fill next.
func (e *Engine) WriterPosition() Pos { return e.writer }

// LastWritten returns the cell written on the previous step, if any.
func (e *Engine) LastWritten() (Pos, bool) { return e.last, e.hasLast }

// ReaderPosition returns the cell the reader will consume next.
func (e *Engine) ReaderPosition() Pos { return e.reader }

// ReaderWindow returns a copy of the reader window, oldest first.
func (e *Engine) ReaderWindow() []Pos { return e.window.Slice() }

// ReaderHead returns the most recently read cell, if any.
func (e *Engine) ReaderHead() (Pos, bool) { return e.window.Newest() }

// ColumnCount returns the number of non-empty cells in col.
func (e *Engine) ColumnCount(col int) int { return e.cells.ColumnCount(col) }

// ColumnCounts returns a copy of all column counters.
func (e *Engine) ColumnCounts() []int { return e.cells.ColumnCounts() }

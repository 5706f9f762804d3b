// Package rob simulates a reorder-buffer style pipeline on a 2-D grid: a
// writer cursor fills cells column by column while a delayed reader cursor
// consumes them along anti-diagonals, keeping a bounded trailing window of
// cells it is still reading.
package rob

import "fmt"

// CellState is the occupancy of a single cell.
type CellState uint8

const (
	Empty CellState = iota
	Writing
	Written
	Reading
)

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Writing:
		return "writing"
	case Written:
		return "written"
	case Reading:
		return "reading"
	default:
		return fmt.Sprintf("CellState(%d)", uint8(s))
	}
}

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}

func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// CellSnapshot is a read-only copy of a cell's metadata. Stamped is false
// exactly when State is Empty, in which case LastStep is meaningless.
type CellSnapshot struct {
	State    CellState
	LastStep int
	Stamped  bool
}

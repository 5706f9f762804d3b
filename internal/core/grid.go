package core

// Grid describes a fixed rows x cols lattice stored in row-major order.
type Grid struct {
	Rows, Cols int
}

// NewGrid returns a grid shape, clamping both dimensions to at least one.
func NewGrid(rows, cols int) Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return Grid{Rows: rows, Cols: cols}
}

// Len reports the number of cells.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.Cols + col }

// Coord is the inverse of Index.
func (g Grid) Coord(i int) (int, int) { return i / g.Cols, i % g.Cols }

// Contains reports whether (row, col) lies inside the lattice.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// WrapRow reduces row modulo Rows into [0, Rows).
func (g Grid) WrapRow(row int) int { return (row%g.Rows + g.Rows) % g.Rows }

// WrapCol reduces col modulo Cols into [0, Cols).
func (g Grid) WrapCol(col int) int { return (col%g.Cols + g.Cols) % g.Cols }

// Size returns the grid as a width/height pair for presentation code.
func (g Grid) Size() Size { return Size{W: g.Cols, H: g.Rows} }

package rob

import "robviz/internal/core"

// nextWriter advances column-major: down a column, then to the top of the
// next column, wrapping after the last one.
func nextWriter(g core.Grid, p Pos) Pos {
	if p.Row < g.Rows-1 {
		return Pos{Row: p.Row + 1, Col: p.Col}
	}
	return Pos{Row: 0, Col: g.WrapCol(p.Col + 1)}
}

// nextReader advances along an anti-diagonal (row down, col right). Leaving
// row 0 restarts at the last row one column to the right of where the
// finished diagonal began, so a full cycle of rows*cols advances visits every
// cell once.
func nextReader(g core.Grid, p Pos) Pos {
	if p.Row > 0 {
		return Pos{Row: p.Row - 1, Col: g.WrapCol(p.Col + 1)}
	}
	return Pos{Row: g.Rows - 1, Col: g.WrapCol(p.Col + 2 - g.Rows)}
}

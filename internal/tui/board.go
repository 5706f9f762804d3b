package tui

import (
	"fmt"
	"strings"

	"robviz/internal/rob"
)

// RenderBoard draws the grid as text with row 0 at the bottom. Each cell is
// four columns wide: a role glyph and the write step, or "." when empty.
//
//	' ' written   '*' last written   'R' reader head   'r' reader trail
func RenderBoard(e *rob.Engine) string {
	g := e.Grid()
	head, hasHead := e.ReaderHead()
	var b strings.Builder
	for row := g.Rows - 1; row >= 0; row-- {
		fmt.Fprintf(&b, "%3d |", row)
		for col := 0; col < g.Cols; col++ {
			p := rob.Pos{Row: row, Col: col}
			snap := e.Inspect(p)
			if !snap.Stamped {
				b.WriteString("   .")
				continue
			}
			glyph := ' '
			switch snap.State {
			case rob.Writing:
				glyph = '*'
			case rob.Reading:
				glyph = 'r'
				if hasHead && p == head {
					glyph = 'R'
				}
			}
			fmt.Fprintf(&b, "%c%3d", glyph, snap.LastStep%1000)
		}
		b.WriteByte('\n')
	}
	b.WriteString("    +")
	b.WriteString(strings.Repeat("-", 4*g.Cols))
	b.WriteString("\n     ")
	for col := 0; col < g.Cols; col++ {
		fmt.Fprintf(&b, "%4d", col)
	}
	b.WriteByte('\n')
	return b.String()
}

package rob

import "image/color"

// Display values encoded by Cells. Writing and Reading split further into
// the cursor cell and the rest so presentation can highlight them.
const (
	DisplayEmpty uint8 = iota
	DisplayFilled
	DisplayLastWritten
	DisplayTrail
	DisplayHead
)

var robPalette = []color.RGBA{
	DisplayEmpty:       {R: 255, G: 255, B: 255, A: 255}, // white
	DisplayFilled:      {R: 176, G: 224, B: 230, A: 255}, // powder blue
	DisplayLastWritten: {R: 0, G: 0, B: 128, A: 255},     // navy blue
	DisplayTrail:       {R: 169, G: 169, B: 169, A: 255}, // dark gray
	DisplayHead:        {R: 0, G: 0, B: 0, A: 255},       // black
}

// Palette returns the colors indexed by the values Cells produces.
func (e *Engine) Palette() []color.RGBA { return robPalette }

// Cells returns the display encoding of every cell in row-major order. The
// slice is reused between calls.
func (e *Engine) Cells() []uint8 {
	if len(e.display) != e.grid.Len() {
		e.display = make([]uint8, e.grid.Len())
	}
	head, hasHead := e.window.Newest()
	for i := range e.display {
		row, col := e.grid.Coord(i)
		p := Pos{Row: row, Col: col}
		e.display[i] = displayValue(e.cells.State(p), hasHead && p == head)
	}
	return e.display
}

func displayValue(s CellState, head bool) uint8 {
	switch s {
	case Writing:
		return DisplayLastWritten
	case Written:
		return DisplayFilled
	case Reading:
		if head {
			return DisplayHead
		}
		return DisplayTrail
	default:
		return DisplayEmpty
	}
}

//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"robviz/internal/render"
	"robviz/internal/rob"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	writerMarker = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	readerMarker = color.RGBA{R: 220, G: 60, B: 60, A: 255}
)

// Overlay marks the cells both cursors will visit next and describes the
// cell under the mouse pointer.
type Overlay struct {
	engine *rob.Engine
	layout render.Layout

	showCursors bool
	hover       rob.Pos
	hovering    bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(e *rob.Engine, l render.Layout) *Overlay {
	return &Overlay{engine: e, layout: l, showCursors: true}
}

// Update tracks the pointer and the cursor toggle (key C).
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCursors = !o.showCursors
	}
	mx, my := ebiten.CursorPosition()
	row, col, ok := o.layout.CellAt(mx, my)
	o.hover = rob.Pos{Row: row, Col: col}
	o.hovering = ok
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showCursors && !o.engine.Halted() {
		o.outline(screen, o.engine.WriterPosition(), writerMarker)
		if o.engine.TimeStep() >= o.engine.Config().TShift {
			o.outline(screen, o.engine.ReaderPosition(), readerMarker)
		}
	}
	if !o.hovering {
		return
	}
	snap := o.engine.Inspect(o.hover)
	msg := fmt.Sprintf("%v %v", o.hover, snap.State)
	if snap.Stamped {
		msg += fmt.Sprintf(" @%d", snap.LastStep)
	}
	msg += fmt.Sprintf("  col count %d", o.engine.ColumnCount(o.hover.Col))
	ebitenutil.DebugPrintAt(screen, msg, o.layout.Margin, 0)
}

func (o *Overlay) outline(screen *ebiten.Image, p rob.Pos, c color.RGBA) {
	r := o.layout.Cell(p.Row, p.Col)
	vector.StrokeRect(screen, float32(r.Min.X)+1, float32(r.Min.Y)+1, float32(r.Dx())-2, float32(r.Dy())-2, 2, c, false)
}

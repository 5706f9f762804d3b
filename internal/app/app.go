//go:build ebiten

package app

import (
	"image/color"

	"robviz/internal/core"
	"robviz/internal/render"
	"robviz/internal/rob"
	"robviz/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const panelHeight = 96

// Game adapts a reorder-buffer engine to the ebiten.Game interface.
type Game struct {
	engine  *rob.Engine
	painter *render.BoardPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pace    *core.FixedStep

	stamps []render.Stamp

	manual   bool
	tickOnce bool
}

// New constructs a Game for the provided engine.
func New(e *rob.Engine, cfg *Config) *Game {
	layout := render.NewLayout(e.Grid().Rows, e.Grid().Cols, cfg.CellSize)
	g := &Game{
		engine:  e,
		painter: render.NewBoardPainter(layout),
		pace:    core.NewFixedStep(cfg.Delay),
		stamps:  make([]render.Stamp, e.Grid().Len()),
		manual:  cfg.Manual,
	}
	w, h := layout.Size()
	g.hud = ui.NewHUD(e, w, panelHeight)
	g.overlay = ui.NewOverlay(e, layout)
	g.hud.SetOffset(h)
	e.Observe(g.hud)
	return g
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	w, h := g.painter.Layout().Size()
	return w, h + panelHeight
}

// Update handles input and advances the simulation at most once per frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.manual = !g.manual
		g.pace.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.engine.Reset()
		g.hud.Clear()
	}

	g.overlay.Update()

	step := g.tickOnce
	if !g.manual && g.pace.ShouldStep() {
		step = true
	}
	if step && !g.engine.Halted() {
		g.engine.Step()
	}
	g.tickOnce = false
	return nil
}

// Draw renders the board, the overlay and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	grid := g.engine.Grid()
	for i := range g.stamps {
		row, col := grid.Coord(i)
		snap := g.engine.Inspect(rob.Pos{Row: row, Col: col})
		g.stamps[i] = render.Stamp{Step: snap.LastStep, Show: snap.Stamped}
	}
	g.painter.Draw(screen, g.engine.Cells(), g.stamps, g.engine.Palette())
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.manual)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

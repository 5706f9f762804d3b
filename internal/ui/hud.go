//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"robviz/internal/rob"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const maxWarnings = 3

var (
	panelColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	textColor  = color.RGBA{A: 255}
	errorColor = color.RGBA{R: 200, A: 255}
	warnColor  = color.RGBA{R: 120, G: 90, A: 255}
)

// HUD renders the status panel below the board: the status line, the
// configuration, the latest warnings and the halt reason.
type HUD struct {
	engine  *rob.Engine
	width   int
	height  int
	offsetY int
	panel   *ebiten.Image

	params   string
	warnings []string
}

// NewHUD constructs a HUD for the engine with the given panel size.
func NewHUD(e *rob.Engine, width, height int) *HUD {
	h := &HUD{engine: e, width: width, height: height}
	h.params = buildParams(e.Config())
	if width > 0 && height > 0 {
		h.panel = ebiten.NewImage(width, height)
	}
	return h
}

func buildParams(cfg rob.Config) string {
	s := ""
	for _, g := range cfg.Parameters().Groups {
		for _, p := range g.Params {
			if s != "" {
				s += "  "
			}
			s += fmt.Sprintf("%s=%s", p.Label, p.Value)
		}
	}
	return s
}

// SetOffset places the panel y pixels from the top of the screen.
func (h *HUD) SetOffset(y int) { h.offsetY = y }

// Observe keeps the most recent warnings for display.
func (h *HUD) Observe(e rob.Event) {
	if e.Kind != rob.EventWarning {
		return
	}
	h.warnings = append(h.warnings, fmt.Sprintf("warning [%d]: %s", e.Step, e.Message))
	if len(h.warnings) > maxWarnings {
		h.warnings = h.warnings[len(h.warnings)-maxWarnings:]
	}
}

// Clear forgets displayed warnings, e.g. after a reset.
func (h *HUD) Clear() { h.warnings = h.warnings[:0] }

// Draw paints the panel. manual selects the key hint shown.
func (h *HUD) Draw(screen *ebiten.Image, manual bool) {
	if h == nil || h.panel == nil {
		return
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	y := 14
	text.Draw(h.panel, h.engine.StatusLine(), face, 8, y, textColor)
	y += 14
	text.Draw(h.panel, h.params, face, 8, y, textColor)
	y += 14
	hint := "space: step  enter: auto  r: reset  q: quit"
	if !manual {
		hint = "running  enter: pause  r: reset  q: quit"
	}
	text.Draw(h.panel, hint, face, 8, y, textColor)
	for _, w := range h.warnings {
		y += 14
		text.Draw(h.panel, w, face, 8, y, warnColor)
	}
	if h.engine.Halted() {
		text.Draw(h.panel, h.engine.Reason(), face, 8, h.height-6, errorColor)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(h.offsetY))
	screen.DrawImage(h.panel, op)
}

// Package tui is a terminal front-end that steps the engine on key presses
// or on a timer.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"robviz/internal/rob"

	"github.com/jroimartin/gocui"
)

const logLines = 200

// UI binds an engine to a gocui screen.
type UI struct {
	engine   *rob.Engine
	interval time.Duration
	auto     bool
	log      []string
}

// New returns a UI for e. With auto set the engine steps every interval
// until paused; otherwise it steps on each key press.
func New(e *rob.Engine, interval time.Duration, auto bool) *UI {
	u := &UI{engine: e, interval: interval, auto: auto}
	e.Observe(rob.ObserverFunc(u.observe))
	return u
}

func (u *UI) observe(e rob.Event) {
	switch e.Kind {
	case rob.EventWarning:
		u.appendLog(fmt.Sprintf("warning [%d]: %s", e.Step, e.Message))
	case rob.EventHalt:
		u.appendLog("illegal state encountered: " + e.Message)
	}
}

func (u *UI) appendLog(line string) {
	u.log = append(u.log, line)
	if len(u.log) > logLines {
		u.log = u.log[len(u.log)-logLines:]
	}
}

// Run blocks until the user quits.
func (u *UI) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("create gui: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(u.layout)
	if err := u.bind(g); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go u.ticker(g, done)

	if err := g.MainLoop(); err != nil && !errors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

func (u *UI) bind(g *gocui.Gui) error {
	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, quit},
		{'q', quit},
		{gocui.KeySpace, u.stepOnce},
		{'n', u.stepOnce},
		{gocui.KeyEnter, u.toggleAuto},
		{'r', u.reset},
	}
	for _, b := range bindings {
		if err := g.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			return fmt.Errorf("bind key: %w", err)
		}
	}
	return nil
}

// ticker requests auto steps. The step itself runs inside Gui.Update on the
// main loop, so it never overlaps a key-triggered step.
func (u *UI) ticker(g *gocui.Gui, done <-chan struct{}) {
	t := time.NewTicker(u.interval)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			g.Update(func(g *gocui.Gui) error {
				if u.auto {
					u.engine.Step()
				}
				return nil
			})
		}
	}
}

func (u *UI) stepOnce(g *gocui.Gui, v *gocui.View) error {
	u.engine.Step()
	return nil
}

func (u *UI) toggleAuto(g *gocui.Gui, v *gocui.View) error {
	u.auto = !u.auto
	return nil
}

func (u *UI) reset(g *gocui.Gui, v *gocui.View) error {
	u.engine.Reset()
	u.log = u.log[:0]
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

// minBoardHeight keeps the board view valid on very short terminals.
const minBoardHeight = 2

// paneHeights returns the bottom edge of the board view for a terminal maxY
// rows high, and whether the log view below the status view still fits.
func paneHeights(maxY, rows int) (int, bool) {
	boardH := rows + 4
	if boardH > maxY-8 {
		boardH = maxY - 8
	}
	if boardH < minBoardHeight {
		boardH = minBoardHeight
	}
	return boardH, boardH+5 < maxY-1
}

func (u *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	boardH, showLog := paneHeights(maxY, u.engine.Grid().Rows)

	board, err := g.SetView("board", 0, 0, maxX-1, boardH)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	board.Title = "Reorder Buffer"
	board.Clear()
	fmt.Fprint(board, RenderBoard(u.engine))

	status, err := g.SetView("status", 0, boardH+1, maxX-1, boardH+4)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	status.Title = "Status"
	status.Clear()
	fmt.Fprintln(status, u.engine.StatusLine())
	mode := "manual (space: step, enter: auto)"
	if u.auto {
		mode = "auto (enter: pause)"
	}
	if u.engine.Halted() {
		mode = "halted (r: reset)"
	}
	fmt.Fprintf(status, "%s  r: reset  q: quit", mode)

	if !showLog {
		if err := g.DeleteView("log"); err != nil && err != gocui.ErrUnknownView {
			return err
		}
		return nil
	}
	logView, err := g.SetView("log", 0, boardH+5, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	logView.Title = "Log"
	logView.Clear()
	visible := maxY - boardH - 7
	lines := u.log
	if visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	fmt.Fprint(logView, strings.Join(lines, "\n"))
	return nil
}

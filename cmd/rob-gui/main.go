//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"robviz/internal/app"
	"robviz/internal/rob"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()
	if err := cfg.CheckGUI(); err != nil {
		log.Fatalf("rob-gui: %v", err)
	}

	engine, err := rob.New(cfg.Sim())
	if err != nil {
		log.Fatalf("rob-gui: %v", err)
	}
	engine.Observe(rob.LogObserver(log.New(os.Stdout, "", 0)))

	game := app.New(engine, cfg)
	w, h := game.Size()

	ebiten.SetWindowTitle("Reorder Buffer")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"robviz/internal/app"
	"robviz/internal/core"
	"robviz/internal/drive"
	"robviz/internal/rob"
	"robviz/internal/tui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	useTUI := flag.Bool("tui", false, "run the interactive terminal view")
	jsonOut := flag.Bool("json", false, "print a JSON report when the run ends")
	quiet := flag.Bool("quiet", false, "suppress per-step status lines")
	flag.Parse()
	cfg.Normalize()

	engine, err := rob.New(cfg.Sim())
	if err != nil {
		log.Fatalf("rob: %v", err)
	}

	if *useTUI {
		if err := tui.New(engine, cfg.Delay, !cfg.Manual).Run(); err != nil {
			log.Fatalf("rob: %v", err)
		}
		return
	}

	out := log.New(os.Stdout, "", 0)
	engine.Observe(rob.LogObserver(out))
	fmt.Printf("Running with: z=%d, x=%d, t_shift=%d, read_size=%d, delay=%v, manual=%v, batch=%v\n",
		cfg.Rows, cfg.Cols, cfg.TShift, cfg.ReadSize, cfg.Delay, cfg.Manual, cfg.Batch)

	status := func(core.StepResult) {
		if !*quiet {
			fmt.Println(engine.StatusLine())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case cfg.Batch:
		drive.Batch(engine, cfg.Steps, nil)
		fmt.Println("Simulation done.")
	case cfg.Manual:
		fmt.Println("Press enter to step, q to quit.")
		fmt.Println(engine.StatusLine())
		_, err = drive.Manual(ctx, engine, drive.LineTriggers(ctx, os.Stdin), status)
	default:
		fmt.Println(engine.StatusLine())
		_, err = drive.Timer(ctx, engine, cfg.Delay, 0, status)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("rob: %v", err)
	}

	if *jsonOut {
		b, err := rob.MarshalReport(engine.Report())
		if err != nil {
			log.Fatalf("rob: %v", err)
		}
		fmt.Println(string(b))
	}
}

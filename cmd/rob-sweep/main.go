package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"robviz/internal/rob"
	"robviz/internal/store"
	"robviz/internal/sweep"
)

func main() {
	space := sweep.Space{
		Rows:     sweep.Span{Lo: 2, Hi: 8},
		Cols:     sweep.Span{Lo: 2, Hi: 16},
		TShift:   sweep.Span{Lo: 0, Hi: 70},
		ReadSize: sweep.Span{Lo: 1, Hi: 10},
	}
	flag.Var(&space.Rows, "z", "row range lo:hi")
	flag.Var(&space.Cols, "x", "column range lo:hi")
	flag.Var(&space.TShift, "t_shift", "reader delay range lo:hi")
	flag.Var(&space.ReadSize, "read_size", "window size range lo:hi")
	steps := flag.Int("steps", 1000, "step budget per configuration")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "number of results to print")
	dbPath := flag.String("db", "", "SQLite file to record outcomes in")
	name := flag.String("name", "", "sweep name stored with each outcome (default: timestamp)")
	jsonOut := flag.Bool("json", false, "print every result as a JSON line")
	flag.Parse()

	cfgs := space.Configs()
	fmt.Printf("Sweeping %d configurations (%d workers, %d steps)\n", len(cfgs), *workers, *steps)

	start := time.Now()
	results := sweep.Run(cfgs, *steps, *workers)
	elapsed := time.Since(start)

	survivors := 0
	for _, res := range results {
		if !res.Halted {
			survivors++
		}
		if *jsonOut {
			b, err := rob.MarshalReport(rob.Report{
				Rows:     res.Config.Rows,
				Cols:     res.Config.Cols,
				TShift:   res.Config.TShift,
				ReadSize: res.Config.ReadSize,
				Steps:    res.Steps,
				Halted:   res.Halted,
				Reason:   res.Reason,
			})
			if err != nil {
				log.Fatalf("rob-sweep: %v", err)
			}
			fmt.Println(string(b))
		}
	}

	fmt.Printf("\n%d of %d configurations survived %d steps (elapsed %s)\n",
		survivors, len(results), *steps, elapsed.Round(time.Millisecond))
	fmt.Printf("Top %d results:\n", *top)
	for i := 0; i < len(results) && i < *top; i++ {
		res := results[i]
		status := "ok"
		if res.Halted {
			status = res.Reason
		}
		fmt.Printf("%2d) z=%d x=%d t_shift=%d read_size=%d steps=%d warnings=%d %s\n",
			i+1, res.Config.Rows, res.Config.Cols, res.Config.TShift, res.Config.ReadSize, res.Steps, res.Warnings, status)
	}

	if *dbPath == "" {
		return
	}
	sweepName := *name
	if sweepName == "" {
		sweepName = start.Format(time.RFC3339)
	}
	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("rob-sweep: %v", err)
	}
	defer db.Close()

	outcomes := make([]store.Outcome, len(results))
	for i, res := range results {
		outcomes[i] = store.Outcome{
			Sweep:    sweepName,
			Rows:     res.Config.Rows,
			Cols:     res.Config.Cols,
			TShift:   res.Config.TShift,
			ReadSize: res.Config.ReadSize,
			Steps:    res.Steps,
			Halted:   res.Halted,
			Reason:   res.Reason,
		}
	}
	if err := db.Save(context.Background(), outcomes); err != nil {
		log.Fatalf("rob-sweep: %v", err)
	}
	fmt.Printf("Recorded %d outcomes as sweep %q in %s\n", len(outcomes), sweepName, *dbPath)
}

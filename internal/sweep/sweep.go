// Package sweep runs many independent engines over a parameter grid on a
// worker pool. Each engine is stepped by exactly one goroutine.
package sweep

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"robviz/internal/drive"
	"robviz/internal/rob"
)

// Span is an inclusive integer range parsed from "n" or "lo:hi".
type Span struct {
	Lo, Hi int
}

// String implements flag.Value.
func (s *Span) String() string {
	if s.Lo == s.Hi {
		return strconv.Itoa(s.Lo)
	}
	return fmt.Sprintf("%d:%d", s.Lo, s.Hi)
}

// Set implements flag.Value.
func (s *Span) Set(v string) error {
	lo, hi, found := strings.Cut(v, ":")
	a, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return fmt.Errorf("parse span %q: %w", v, err)
	}
	b := a
	if found {
		if b, err = strconv.Atoi(strings.TrimSpace(hi)); err != nil {
			return fmt.Errorf("parse span %q: %w", v, err)
		}
	}
	if b < a {
		a, b = b, a
	}
	s.Lo, s.Hi = a, b
	return nil
}

// Space is the parameter grid to explore.
type Space struct {
	Rows, Cols, TShift, ReadSize Span
}

// Configs enumerates every valid configuration in the space.
func (s Space) Configs() []rob.Config {
	var out []rob.Config
	for r := s.Rows.Lo; r <= s.Rows.Hi; r++ {
		for c := s.Cols.Lo; c <= s.Cols.Hi; c++ {
			for t := s.TShift.Lo; t <= s.TShift.Hi; t++ {
				for k := s.ReadSize.Lo; k <= s.ReadSize.Hi; k++ {
					cfg := rob.Config{Rows: r, Cols: c, TShift: t, ReadSize: k}
					if cfg.Validate() == nil {
						out = append(out, cfg)
					}
				}
			}
		}
	}
	return out
}

// Result is the outcome of running one configuration.
type Result struct {
	Config rob.Config
	// Steps is the number of steps survived, or the halting step.
	Steps    int
	Halted   bool
	Reason   string
	Warnings int
}

// Run evaluates every configuration for up to steps steps using workers
// goroutines. Results are sorted with survivors first, then by steps
// survived descending.
func Run(cfgs []rob.Config, steps, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan rob.Config)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				results <- runOne(cfg, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range cfgs {
			jobs <- cfg
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(cfgs))
	for res := range results {
		all = append(all, res)
	}
	Sort(all)
	return all
}

// Sort orders results survivors first, then by steps descending, then by
// configuration so output is deterministic.
func Sort(all []Result) {
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Halted != b.Halted {
			return !a.Halted
		}
		if a.Steps != b.Steps {
			return a.Steps > b.Steps
		}
		if a.Config.Rows != b.Config.Rows {
			return a.Config.Rows < b.Config.Rows
		}
		if a.Config.Cols != b.Config.Cols {
			return a.Config.Cols < b.Config.Cols
		}
		if a.Config.TShift != b.Config.TShift {
			return a.Config.TShift < b.Config.TShift
		}
		return a.Config.ReadSize < b.Config.ReadSize
	})
}

func runOne(cfg rob.Config, steps int) Result {
	e, err := rob.New(cfg)
	if err != nil {
		return Result{Config: cfg, Halted: true, Reason: err.Error()}
	}
	warnings := 0
	e.Observe(rob.ObserverFunc(func(ev rob.Event) {
		if ev.Kind == rob.EventWarning {
			warnings++
		}
	}))
	drive.Batch(e, steps, nil)
	return Result{
		Config:   cfg,
		Steps:    e.TimeStep(),
		Halted:   e.Halted(),
		Reason:   e.Reason(),
		Warnings: warnings,
	}
}

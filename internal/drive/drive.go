// Package drive triggers simulation steps. Every mode calls the same
// Stepper strictly one step at a time; only the cadence differs.
package drive

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"robviz/internal/core"
)

// Hook is called after every executed step.
type Hook func(core.StepResult)

// Batch runs up to maxSteps back-to-back, stopping early on a halt. It
// returns the number of steps executed and the last result.
func Batch(s core.Stepper, maxSteps int, after Hook) (int, core.StepResult) {
	var res core.StepResult
	n := 0
	for n < maxSteps && !s.Halted() {
		res = s.Step()
		n++
		if after != nil {
			after(res)
		}
	}
	return n, res
}

// Timer steps once per interval until the stepper halts, maxSteps is
// reached (maxSteps <= 0 means unbounded) or ctx is done.
func Timer(ctx context.Context, s core.Stepper, interval time.Duration, maxSteps int, after Hook) (int, error) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	n := 0
	for !s.Halted() && (maxSteps <= 0 || n < maxSteps) {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-ticker.C:
			res := s.Step()
			n++
			if after != nil {
				after(res)
			}
		}
	}
	return n, nil
}

// Manual executes one step per value received on triggers until the
// channel closes, the stepper halts or ctx is done.
func Manual(ctx context.Context, s core.Stepper, triggers <-chan struct{}, after Hook) (int, error) {
	n := 0
	for !s.Halted() {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case _, ok := <-triggers:
			if !ok {
				return n, nil
			}
			res := s.Step()
			n++
			if after != nil {
				after(res)
			}
		}
	}
	return n, nil
}

// LineTriggers emits one trigger per line read from r. A line reading "q"
// or "quit", or the end of input, closes the channel.
func LineTriggers(ctx context.Context, r io.Reader) <-chan struct{} {
	out := make(chan struct{})
	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			switch strings.TrimSpace(sc.Text()) {
			case "q", "quit":
				return
			}
			select {
			case out <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

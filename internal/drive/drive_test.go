package drive

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"robviz/internal/core"
	"robviz/internal/rob"
)

// countdown halts after a fixed number of steps.
type countdown struct {
	left  int
	steps int
}

func (c *countdown) Step() core.StepResult {
	if c.left <= 0 {
		return core.StepResult{Step: c.steps, Halted: true, Reason: "done"}
	}
	c.left--
	res := core.StepResult{Step: c.steps, Halted: c.left == 0}
	if res.Halted {
		res.Reason = "done"
	} else {
		c.steps++
	}
	return res
}

func (c *countdown) Halted() bool { return c.left <= 0 }

func TestBatchStopsAtBudget(t *testing.T) {
	s := &countdown{left: 100}
	calls := 0
	n, res := Batch(s, 10, func(core.StepResult) { calls++ })
	if n != 10 || calls != 10 || !res.OK() {
		t.Fatalf("n=%d calls=%d res=%+v", n, calls, res)
	}
}

func TestBatchStopsAtHalt(t *testing.T) {
	s := &countdown{left: 3}
	n, res := Batch(s, 10, nil)
	if n != 3 || res.OK() || res.Reason != "done" {
		t.Fatalf("n=%d res=%+v", n, res)
	}
}

func TestTimerRunsUntilHalt(t *testing.T) {
	s := &countdown{left: 4}
	n, err := Timer(context.Background(), s, time.Millisecond, 0, nil)
	if err != nil || n != 4 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestTimerHonoursBudgetAndContext(t *testing.T) {
	s := &countdown{left: 1000}
	if n, err := Timer(context.Background(), s, time.Millisecond, 3, nil); err != nil || n != 3 {
		t.Fatalf("budget: n=%d err=%v", n, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Timer(ctx, s, time.Hour, 0, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled timer err = %v", err)
	}
}

func TestManualStepsPerTrigger(t *testing.T) {
	s := &countdown{left: 100}
	ctx := context.Background()
	triggers := LineTriggers(ctx, strings.NewReader("\n\nstep\nq\n\n"))
	n, err := Manual(ctx, s, triggers, nil)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestManualStopsOnHalt(t *testing.T) {
	s := &countdown{left: 2}
	triggers := make(chan struct{}, 5)
	for i := 0; i < 5; i++ {
		triggers <- struct{}{}
	}
	n, err := Manual(context.Background(), s, triggers, nil)
	if err != nil || n != 2 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestBatchDrivesEngineToCollision(t *testing.T) {
	e, err := rob.New(rob.Config{Rows: 2, Cols: 2, TShift: 2, ReadSize: 4})
	if err != nil {
		t.Fatal(err)
	}
	var seen []int
	n, res := Batch(e, 1000, func(r core.StepResult) { seen = append(seen, r.Step) })
	if n != 6 || res.OK() || res.Step != 5 {
		t.Fatalf("n=%d res=%+v", n, res)
	}
	if len(seen) != 6 || seen[5] != 5 {
		t.Fatalf("hook saw steps %v", seen)
	}
}

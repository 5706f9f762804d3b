package core

// Size describes the dimensions of a board in cells.
type Size struct {
	W int
	H int
}

// StepResult reports the outcome of one simulation tick.
type StepResult struct {
	// Step is the clock value the tick executed at.
	Step int
	// Halted is set when the tick (or an earlier one) hit a fatal rule violation.
	Halted bool
	Reason string
}

// OK reports whether the simulation is still running after the tick.
func (r StepResult) OK() bool { return !r.Halted }

// Stepper is the contract every driver relies on. Step must never be called
// concurrently with itself.
type Stepper interface {
	Step() StepResult
	Halted() bool
}

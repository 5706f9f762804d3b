package app

import (
	"errors"
	"flag"
	"time"

	"robviz/internal/rob"
)

// Config represents the command-line parameters shared by the runners.
type Config struct {
	Rows     int
	Cols     int
	TShift   int
	ReadSize int

	CellSize int
	Delay    time.Duration
	Manual   bool
	Batch    bool
	Steps    int
}

// NewConfig returns a Config populated with the standard defaults.
func NewConfig() *Config {
	d := rob.DefaultConfig()
	return &Config{
		Rows:     d.Rows,
		Cols:     d.Cols,
		TShift:   d.TShift,
		ReadSize: d.ReadSize,
		CellSize: 24,
		Delay:    100 * time.Millisecond,
		Manual:   true,
		Steps:    1000,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "z", c.Rows, "number of bands (rows)")
	fs.IntVar(&c.Cols, "x", c.Cols, "pixel count of the x dimension (columns)")
	fs.IntVar(&c.TShift, "t_shift", c.TShift, "time delay before reader starts")
	fs.IntVar(&c.ReadSize, "read_size", c.ReadSize, "pipeline depth")
	fs.IntVar(&c.CellSize, "cell_size", c.CellSize, "display size of a cell")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "step delay for animation")
	fs.BoolVar(&c.Manual, "manual", c.Manual, "step on key press instead of a timer")
	fs.BoolVar(&c.Batch, "batch", c.Batch, "run without display up to -steps steps")
	fs.IntVar(&c.Steps, "steps", c.Steps, "step budget in batch mode")
}

// Normalize resolves conflicting options: batch mode never steps manually.
func (c *Config) Normalize() {
	if c.Batch {
		c.Manual = false
	}
}

// ErrBatchGUI is returned by CheckGUI when batch mode is requested from the
// windowed runner.
var ErrBatchGUI = errors.New("batch mode runs without a display; use rob -batch")

// CheckGUI rejects options the windowed runner cannot honour.
func (c *Config) CheckGUI() error {
	if c.Batch {
		return ErrBatchGUI
	}
	return nil
}

// Sim returns the simulation part of the configuration.
func (c *Config) Sim() rob.Config {
	return rob.Config{Rows: c.Rows, Cols: c.Cols, TShift: c.TShift, ReadSize: c.ReadSize}
}

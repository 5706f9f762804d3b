package rob

import (
	"errors"
	"fmt"
	"strconv"

	"robviz/internal/core"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the four integers that fully determine a simulation.
type Config struct {
	Rows int
	Cols int
	// TShift is the step at which the reader starts.
	TShift int
	// ReadSize bounds the reader's trailing window.
	ReadSize int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 8, Cols: 8, TShift: 65, ReadSize: 8}
}

// Validate reports whether the configuration can build an engine.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.Cols < 1:
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols)
	case c.ReadSize < 1:
		return fmt.Errorf("%w: read_size must be positive, got %d", ErrInvalidConfig, c.ReadSize)
	case c.TShift < 0:
		return fmt.Errorf("%w: t_shift must not be negative, got %d", ErrInvalidConfig, c.TShift)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positive := func(dst *int, keys ...string) {
		for _, k := range keys {
			if v, ok := cfg[k]; ok {
				if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
					*dst = parsed
				}
			}
		}
	}
	positive(&c.Rows, "z", "rows")
	positive(&c.Cols, "x", "cols")
	positive(&c.ReadSize, "read_size")
	if v, ok := cfg["t_shift"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.TShift = parsed
		}
	}
	return c
}

// Parameters exposes the configuration for status panels and listings.
func (c Config) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Main Parameters",
		Params: []core.Parameter{
			intParam("rows", "z", c.Rows, "Number of bands"),
			intParam("cols", "x", c.Cols, "Pixel count of the x dimension"),
			intParam("t_shift", "t_shift", c.TShift, "Time delay before reader starts"),
			intParam("read_size", "read_size", c.ReadSize, "Pipeline depth"),
		},
	}}}
}

func intParam(key, label string, value int, desc string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeInt,
		Value:       strconv.Itoa(value),
		Description: desc,
	}
}

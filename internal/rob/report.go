package rob

import (
	"fmt"

	"github.com/sugawarayuuta/sonnet"
)

// Report summarizes the state of an engine for machine consumption.
type Report struct {
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	TShift   int    `json:"t_shift"`
	ReadSize int    `json:"read_size"`
	Steps    int    `json:"steps"`
	Halted   bool   `json:"halted"`
	Reason   string `json:"reason,omitempty"`
	Writer   [2]int `json:"writer"`
	// Window lists the reader window as [row, col] pairs, oldest first.
	Window       [][2]int `json:"window"`
	ColumnCounts []int    `json:"column_counts"`
}

// Report captures the engine's current state.
func (e *Engine) Report() Report {
	win := e.window.Slice()
	pairs := make([][2]int, len(win))
	for i, p := range win {
		pairs[i] = [2]int{p.Row, p.Col}
	}
	return Report{
		Rows:         e.cfg.Rows,
		Cols:         e.cfg.Cols,
		TShift:       e.cfg.TShift,
		ReadSize:     e.cfg.ReadSize,
		Steps:        e.timeStep,
		Halted:       e.halted,
		Reason:       e.reason,
		Writer:       [2]int{e.writer.Row, e.writer.Col},
		Window:       pairs,
		ColumnCounts: e.cells.ColumnCounts(),
	}
}

// MarshalReport encodes r as a single line of JSON.
func MarshalReport(r Report) ([]byte, error) {
	b, err := sonnet.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal report: %w", err)
	}
	return b, nil
}

// UnmarshalReport decodes a report produced by MarshalReport.
func UnmarshalReport(b []byte) (Report, error) {
	var r Report
	if err := sonnet.Unmarshal(b, &r); err != nil {
		return Report{}, fmt.Errorf("unmarshal report: %w", err)
	}
	return r, nil
}

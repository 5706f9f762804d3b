package rob

import "fmt"

// StatusLine renders the clock, the last written cell and the reader head,
// e.g. "step: 12 | writer: ( 3, 1) | reader:   N/A  ".
func (e *Engine) StatusLine() string {
	writer := "  N/A  "
	if p, ok := e.LastWritten(); ok {
		writer = fmt.Sprintf("(%2d,%2d)", p.Row, p.Col)
	}
	reader := "  N/A  "
	if p, ok := e.ReaderHead(); ok {
		reader = fmt.Sprintf("(%2d,%2d)", p.Row, p.Col)
	}
	return fmt.Sprintf("step:%3d | writer: %s | reader: %s", e.timeStep, writer, reader)
}

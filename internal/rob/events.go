package rob

import (
	"fmt"
	"log"
)

// EventKind classifies what an Event reports.
type EventKind uint8

const (
	// EventWrite: the writer stamped Pos.
	EventWrite EventKind = iota
	// EventRead: the reader appended Pos to its window.
	EventRead
	// EventEvict: Pos left the reader window.
	EventEvict
	// EventWarning: an unusual but legal move.
	EventWarning
	// EventHalt: a fatal rule violation.
	EventHalt
)

func (k EventKind) String() string {
	switch k {
	case EventWrite:
		return "write"
	case EventRead:
		return "read"
	case EventEvict:
		return "evict"
	case EventWarning:
		return "warning"
	case EventHalt:
		return "halt"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event describes one state transition or rule check outcome.
type Event struct {
	Kind    EventKind
	Step    int
	Pos     Pos
	State   CellState
	Message string
}

// Observer receives events synchronously from inside Step. Observers must
// not call back into the engine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

// LogObserver prints warnings and halts to l. Writes, reads and evictions
// are ignored.
func LogObserver(l *log.Logger) Observer {
	return ObserverFunc(func(e Event) {
		switch e.Kind {
		case EventWarning:
			l.Printf("warning [%d]: %s", e.Step, e.Message)
		case EventHalt:
			l.Printf("illegal state encountered: %s", e.Message)
		}
	})
}

package game

import (
	"fmt"
	"strings"
	"time"
)

// Event is one line of the table's event log
type Event struct {
	Time    time.Time `json:"time"`
	Round   int       `json:"round"`
	Message string    `json:"message"`
}

func (e Event) String() string {
	return fmt.Sprintf("%s [round %d] %s", e.Time.Format("15:04:05"), e.Round, e.Message)
}

// record appends a line to the event log and mirrors it to the debug log.
func (t *Table) record(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	t.events = append(t.events, Event{
		Time:    t.clock.Now(),
		Round:   t.round,
		Message: msg,
	})
	t.logger.Debug(msg, "round", t.round, "street", t.street)
}

// Log returns a copy of the event log, oldest first. The log only grows.
func (t *Table) Log() []Event {
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// LogText returns the event messages joined by newlines
func (t *Table) LogText() string {
	var sb strings.Builder
	for _, e := range t.events {
		sb.WriteString(e.Message)
		sb.WriteByte('\n')
	}
	return sb.String()
}

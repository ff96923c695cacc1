package history

import (
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/history"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

/*
RingLog keeps the most recent input lines in a fixed-size ring.

It is owned by the REPL goroutine and is not safe for concurrent use.
*/
type RingLog struct {
	lines []string
	start int // index of the oldest line
	count int
}

// NewRingLog creates a log retaining at most capacity lines.
// A non-positive capacity falls back to history.Capacity.
func NewRingLog(capacity int) ports.HistoryLog {
	if capacity <= 0 {
		capacity = history.Capacity
	}
	return &RingLog{lines: make([]string, capacity)}
}

// Append implements the ports.HistoryLog interface.
func (r *RingLog) Append(line string) bool {
	if line == "" || (r.count > 0 && r.latest() == line) {
		return false
	}
	if r.count < len(r.lines) {
		r.lines[(r.start+r.count)%len(r.lines)] = line
		r.count++
		return true
	}
	// Full: overwrite the oldest slot and advance.
	r.lines[r.start] = line
	r.start = (r.start + 1) % len(r.lines)
	return true
}

// List implements the ports.HistoryLog interface.
func (r *RingLog) List() []history.Entry {
	entries := make([]history.Entry, 0, r.count)
	for i := 0; i < r.count; i++ {
		entries = append(entries, history.Entry{
			Number: i + 1,
			Line:   r.lines[(r.start+i)%len(r.lines)],
		})
	}
	return entries
}

func (r *RingLog) latest() string {
	return r.lines[(r.start+r.count-1)%len(r.lines)]
}

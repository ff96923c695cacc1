package ports

import "github.com/AntonioJCosta/dwimsh/internal/core/domain/history"

// HistoryLog is the bounded, in-memory record of entered lines.
type HistoryLog interface {
	// Append records line unless it is empty or repeats the latest entry.
	// It reports whether the log changed.
	Append(line string) bool
	// List returns the retained entries, oldest first, numbered from 1.
	List() []history.Entry
}

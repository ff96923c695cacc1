package ports

import (
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/job"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// JobTable tracks children started in background mode. Implementations must be
// safe for use by the waiter goroutines and the REPL at the same time.
type JobTable interface {
	// Track registers a started child and records its outcome when it finishes.
	Track(handle *process.Handle, commandLine string) job.Job
	// List returns every job still held by the table, finished ones included.
	List() []job.Job
	// Reap removes and returns jobs that finished since the last call.
	Reap() []job.Job
}

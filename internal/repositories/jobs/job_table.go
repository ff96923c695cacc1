package jobs

import (
	"sort"
	"sync"
	"time"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/job"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

/*
Table tracks background jobs.

Each tracked job gets a waiter goroutine that records the outcome; the REPL
reads the table between lines. All state is guarded by mu.
*/
type Table struct {
	mu     sync.Mutex
	nextID int
	jobs   map[int]*job.Job
	now    func() time.Time
}

// NewTable creates an empty job table.
func NewTable() ports.JobTable {
	return &Table{
		nextID: 1,
		jobs:   make(map[int]*job.Job),
		now:    time.Now,
	}
}

// Track implements the ports.JobTable interface.
func (t *Table) Track(handle *process.Handle, commandLine string) job.Job {
	t.mu.Lock()
	j := &job.Job{
		ID:          t.nextID,
		Pid:         handle.Pid,
		CommandLine: commandLine,
		Started:     t.now(),
		State:       job.Running,
	}
	t.nextID++
	t.jobs[j.ID] = j
	snapshot := *j
	t.mu.Unlock()

	go t.await(j.ID, handle)
	return snapshot
}

// List implements the ports.JobTable interface.
func (t *Table) List() []job.Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sortedLocked(func(*job.Job) bool { return true })
}

// Reap implements the ports.JobTable interface.
func (t *Table) Reap() []job.Job {
	t.mu.Lock()
	defer t.mu.Unlock()

	finished := t.sortedLocked(func(j *job.Job) bool { return j.State == job.Done })
	for _, j := range finished {
		delete(t.jobs, j.ID)
	}
	if len(t.jobs) == 0 {
		t.nextID = 1
	}
	return finished
}

func (t *Table) await(id int, handle *process.Handle) {
	outcome := handle.Wait()

	t.mu.Lock()
	defer t.mu.Unlock()
	if j, ok := t.jobs[id]; ok {
		j.State = job.Done
		j.Outcome = outcome
	}
}

// sortedLocked copies the jobs accepted by keep, ordered by ID. mu must be held.
func (t *Table) sortedLocked(keep func(*job.Job) bool) []job.Job {
	out := []job.Job{}
	for _, j := range t.jobs {
		if keep(j) {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

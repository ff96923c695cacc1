package jobs

import (
	"testing"
	"time"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/job"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// pendingHandle returns a handle and the channel that completes it.
func pendingHandle(pid int) (*process.Handle, chan process.Outcome) {
	done := make(chan process.Outcome, 1)
	return &process.Handle{Pid: pid, Done: done}, done
}

// waitForReap polls Reap until it returns something or the deadline passes.
func waitForReap(t *testing.T, table *Table) []job.Job {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if finished := table.Reap(); len(finished) > 0 {
			return finished
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for a finished job")
	return nil
}

func TestTable_TrackAndReap(t *testing.T) {
	table := NewTable().(*Table)

	h1, done1 := pendingHandle(100)
	h2, done2 := pendingHandle(200)

	j1 := table.Track(h1, "sleep 10 &")
	j2 := table.Track(h2, "make build &")

	if j1.ID != 1 || j2.ID != 2 {
		t.Fatalf("Track() IDs = %d, %d, want 1, 2", j1.ID, j2.ID)
	}
	if j1.State != job.Running {
		t.Errorf("Track() state = %v, want Running", j1.State)
	}
	if got := table.Reap(); len(got) != 0 {
		t.Errorf("Reap() with no finished jobs = %v, want none", got)
	}

	done2 <- process.Outcome{Pid: 200, ExitCode: 2}
	finished := waitForReap(t, table)
	if len(finished) != 1 || finished[0].ID != 2 {
		t.Fatalf("Reap() = %+v, want job 2 only", finished)
	}
	if finished[0].Outcome.ExitCode != 2 || finished[0].State != job.Done {
		t.Errorf("Reap() job = %+v, want Done with exit 2", finished[0])
	}

	// A finished job is reported exactly once.
	if got := table.Reap(); len(got) != 0 {
		t.Errorf("second Reap() = %+v, want none", got)
	}

	listed := table.List()
	if len(listed) != 1 || listed[0].ID != 1 {
		t.Fatalf("List() = %+v, want only job 1", listed)
	}

	done1 <- process.Outcome{Pid: 100, Signaled: true, Signal: "SIGTERM"}
	finished = waitForReap(t, table)
	if len(finished) != 1 || !finished[0].Outcome.Signaled {
		t.Errorf("Reap() = %+v, want signaled job 1", finished)
	}

	// Numbering restarts once the table is empty.
	h3, _ := pendingHandle(300)
	if j3 := table.Track(h3, "top &"); j3.ID != 1 {
		t.Errorf("Track() on an empty table ID = %d, want 1", j3.ID)
	}
}

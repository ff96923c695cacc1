package testutil

import (
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/job"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// MockJobTable is a mock implementation of ports.JobTable that records tracked lines.
type MockJobTable struct {
	Tracked  []string
	Jobs     []job.Job
	Finished []job.Job
}

func (m *MockJobTable) Track(handle *process.Handle, commandLine string) job.Job {
	m.Tracked = append(m.Tracked, commandLine)
	j := job.Job{ID: len(m.Tracked), Pid: handle.Pid, CommandLine: commandLine}
	m.Jobs = append(m.Jobs, j)
	return j
}

func (m *MockJobTable) List() []job.Job {
	return m.Jobs
}

func (m *MockJobTable) Reap() []job.Job {
	finished := m.Finished
	m.Finished = nil
	return finished
}

/*
Package job defines a background job tracked by the shell.
*/
package job

import (
	"time"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// State is the lifecycle position of a Job.
type State int

const (
	Running State = iota
	Done
)

func (s State) String() string {
	if s == Done {
		return "Done"
	}
	return "Running"
}

// Job is a child started in background mode.
type Job struct {
	ID          int
	Pid         int
	CommandLine string
	Started     time.Time
	State       State
	Outcome     process.Outcome
}

/*
Package process defines the lifecycle of a spawned child.
*/
package process

import "fmt"

// Mode selects whether the shell waits for a child before reading the next line.
type Mode int

const (
	Foreground Mode = iota
	Background
)

func (m Mode) String() string {
	if m == Background {
		return "background"
	}
	return "foreground"
}

/*
Outcome is the terminal state of a child: either it exited with ExitCode or it
was killed by Signal.

For a child left running in the background only Pid and JobID are set.
*/
type Outcome struct {
	Pid      int
	JobID    int
	ExitCode int
	Signaled bool
	Signal   string
}

// Success reports a normal exit with status 0.
func (o Outcome) Success() bool {
	return !o.Signaled && o.ExitCode == 0
}

func (o Outcome) String() string {
	if o.Signaled {
		return fmt.Sprintf("killed by %s", o.Signal)
	}
	return fmt.Sprintf("exit %d", o.ExitCode)
}

/*
Handle represents a started child. Done delivers exactly one Outcome once the
child has been reaped.
*/
type Handle struct {
	Pid  int
	Done <-chan Outcome
}

// Wait blocks until the child terminates.
func (h *Handle) Wait() Outcome {
	return <-h.Done
}

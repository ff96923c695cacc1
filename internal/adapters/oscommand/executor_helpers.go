package oscommand

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// outcomeFromState converts the reaped process state into an Outcome.
// A missing state means Wait failed before reaping; that is reported as exit -1.
func outcomeFromState(pid int, state *os.ProcessState, waitErr error) process.Outcome {
	outcome := process.Outcome{Pid: pid, ExitCode: -1}
	if state == nil {
		return outcome
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		outcome.Signaled = true
		outcome.Signal = signalName(ws.Signal())
		return outcome
	}
	outcome.ExitCode = state.ExitCode()
	return outcome
}

// signalName returns the conventional SIGxxx name, falling back to the description.
func signalName(sig syscall.Signal) string {
	if name := unix.SignalName(sig); name != "" {
		return name
	}
	return sig.String()
}

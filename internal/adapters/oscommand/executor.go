package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

// ErrExecFailure indicates the program image could not be started: it is
// missing, not executable, or otherwise rejected by the operating system.
var ErrExecFailure = errors.New("cannot execute command")

// OSCommandExecutor implements the CommandExecutor interface with os/exec.
type OSCommandExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger *log.Logger
}

// NewOSCommandExecutor creates an executor whose children inherit the shell's standard streams.
func NewOSCommandExecutor(logger *log.Logger) ports.CommandExecutor {
	return &OSCommandExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

/*
Start implements the ports.CommandExecutor interface.

argv is copied before use, argv[0] is resolved through PATH by os/exec. A
foreground child shares the shell's stdin and is killed if ctx is cancelled. A
background child gets its own process group and no stdin, so terminal
interrupts and reads stay with the foreground.
*/
func (e *OSCommandExecutor) Start(ctx context.Context, argv []string, mode process.Mode) (*process.Handle, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty command", ErrExecFailure)
	}
	args := append([]string(nil), argv...)

	var cmd *exec.Cmd
	if mode == process.Background {
		cmd = exec.Command(args[0], args[1:]...)
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	} else {
		cmd = exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Stdin = e.Stdin
	}
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrExecFailure, args[0], err)
	}

	pid := cmd.Process.Pid
	e.logger.Debug("spawned child", "pid", pid, "argv", args, "mode", mode)

	done := make(chan process.Outcome, 1)
	go func() {
		waitErr := cmd.Wait()
		outcome := outcomeFromState(pid, cmd.ProcessState, waitErr)
		e.logger.Debug("child terminated", "pid", pid, "outcome", outcome.String())
		done <- outcome
	}()

	return &process.Handle{Pid: pid, Done: done}, nil
}

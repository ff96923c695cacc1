package launcher

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

type service struct {
	resolver ports.CorrectionService
	executor ports.CommandExecutor
	jobs     ports.JobTable
	logger   *log.Logger
}

// NewService creates a new launcher service.
// It panics if resolver, executor or jobs are nil. A nil logger discards output.
func NewService(
	resolver ports.CorrectionService,
	executor ports.CommandExecutor,
	jobs ports.JobTable,
	logger *log.Logger,
) ports.CommandLauncher {
	if resolver == nil {
		panic("resolver cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	if jobs == nil {
		panic("jobs cannot be nil")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{
		resolver: resolver,
		executor: executor,
		jobs:     jobs,
		logger:   logger,
	}
}

/*
Launch resolves argv and runs the result.

A foreground command is waited for and its outcome returned. A background
command is handed to the job table and Launch returns at once with only the
pid and job id filled in; its outcome is reported through the table.
*/
func (s *service) Launch(ctx context.Context, argv command.ArgVector) (process.Outcome, error) {
	resolution, err := s.resolver.Resolve(argv)
	if err != nil {
		return process.Outcome{}, err
	}
	if resolution.Corrected {
		s.logger.Debug("command corrected", "typed", argv.Name(), "resolved", resolution.Argv.Name())
	}

	mode := process.Foreground
	if resolution.Argv.Background {
		mode = process.Background
	}

	handle, err := s.executor.Start(ctx, resolution.Argv.Args, mode)
	if err != nil {
		return process.Outcome{}, fmt.Errorf("launching %s: %w", resolution.Argv.Name(), err)
	}

	if mode == process.Background {
		j := s.jobs.Track(handle, resolution.Argv.Line)
		s.logger.Debug("background job started", "job", j.ID, "pid", j.Pid)
		return process.Outcome{Pid: handle.Pid, JobID: j.ID}, nil
	}

	outcome := handle.Wait()
	s.logger.Debug("foreground command finished", "pid", outcome.Pid, "outcome", outcome.String())
	return outcome, nil
}

package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	StartFunc func(ctx context.Context, argv []string, mode process.Mode) (*process.Handle, error)
	Started   [][]string
}

// Start records argv and calls the mock StartFunc.
func (m *MockCommandExecutor) Start(ctx context.Context, argv []string, mode process.Mode) (*process.Handle, error) {
	m.Started = append(m.Started, argv)
	if m.StartFunc != nil {
		return m.StartFunc(ctx, argv, mode)
	}
	return nil, errors.New("MockCommandExecutor.StartFunc not implemented")
}

// FinishedHandle returns a handle whose child has already terminated with outcome.
func FinishedHandle(outcome process.Outcome) *process.Handle {
	done := make(chan process.Outcome, 1)
	done <- outcome
	return &process.Handle{Pid: outcome.Pid, Done: done}
}

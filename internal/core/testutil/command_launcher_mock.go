package testutil

import (
	"context"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// MockCommandLauncher is a mock implementation of ports.CommandLauncher.
type MockCommandLauncher struct {
	LaunchFunc func(ctx context.Context, argv command.ArgVector) (process.Outcome, error)
	Launched   []command.ArgVector
}

// Launch records argv and calls the mock LaunchFunc.
func (m *MockCommandLauncher) Launch(ctx context.Context, argv command.ArgVector) (process.Outcome, error) {
	m.Launched = append(m.Launched, argv)
	if m.LaunchFunc != nil {
		return m.LaunchFunc(ctx, argv)
	}
	return process.Outcome{}, nil
}

package ports

import (
	"context"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// CommandLauncher resolves an external command line and runs it.
type CommandLauncher interface {
	Launch(ctx context.Context, argv command.ArgVector) (process.Outcome, error)
}

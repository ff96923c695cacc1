package ports

import (
	"context"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/process"
)

// CommandExecutor starts external programs as child processes.
type CommandExecutor interface {
	// Start launches argv[0] with the remaining arguments. The returned handle
	// reports the child's outcome once it has been reaped.
	Start(ctx context.Context, argv []string, mode process.Mode) (*process.Handle, error)
}

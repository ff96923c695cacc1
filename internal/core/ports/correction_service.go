package ports

import "github.com/AntonioJCosta/dwimsh/internal/core/domain/command"

// Resolution is the command line chosen for spawning.
type Resolution struct {
	Argv      command.ArgVector
	Corrected bool
}

// CorrectionService maps a typed command line to one that names a known command,
// asking the user before substituting a correction.
type CorrectionService interface {
	Resolve(argv command.ArgVector) (Resolution, error)
}

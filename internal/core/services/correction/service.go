package correction

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

var (
	// ErrCommandNotFound is returned when a command is neither indexed nor one edit away from an indexed name.
	ErrCommandNotFound = errors.New("command not found")
	// ErrNoCorrectionAccepted is returned when corrections were offered and all were declined.
	ErrNoCorrectionAccepted = errors.New("no correction accepted")
)

type service struct {
	index     ports.CommandIndex
	matcher   ports.CommandMatcher
	confirmer ports.Confirmer
}

// NewService creates a new correction service.
// It panics if any dependency is nil.
func NewService(
	index ports.CommandIndex,
	matcher ports.CommandMatcher,
	confirmer ports.Confirmer,
) ports.CorrectionService {
	if index == nil {
		panic("index cannot be nil")
	}
	if matcher == nil {
		panic("matcher cannot be nil")
	}
	if confirmer == nil {
		panic("confirmer cannot be nil")
	}
	return &service{
		index:     index,
		matcher:   matcher,
		confirmer: confirmer,
	}
}

/*
Resolve decides which command line to spawn for argv.

The index is always consulted first; the matcher runs only on a miss. Names
containing a path separator are returned as typed since the index holds bare
names only.
*/
func (s *service) Resolve(argv command.ArgVector) (ports.Resolution, error) {
	name := argv.Name()
	if name == "" {
		return ports.Resolution{}, fmt.Errorf("%w: empty command", ErrCommandNotFound)
	}

	if strings.ContainsRune(name, '/') || s.index.Contains(name) {
		return ports.Resolution{Argv: argv}, nil
	}

	matches := s.matcher.FindMatches(name)
	if matches.Exact {
		return ports.Resolution{Argv: argv}, nil
	}
	if len(matches.Candidates) == 0 {
		return ports.Resolution{}, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
	}

	accepted, ok := s.askCandidates(matches.Candidates, argv.Remainder())
	if !ok {
		return ports.Resolution{}, fmt.Errorf("%w: %s", ErrNoCorrectionAccepted, name)
	}
	return ports.Resolution{Argv: argv.WithName(accepted), Corrected: true}, nil
}

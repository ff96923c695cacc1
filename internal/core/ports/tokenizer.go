package ports

import "github.com/AntonioJCosta/dwimsh/internal/core/domain/command"

// Tokenizer splits a raw input line into an argument vector.
type Tokenizer interface {
	Tokenize(line string) (command.ArgVector, error)
}

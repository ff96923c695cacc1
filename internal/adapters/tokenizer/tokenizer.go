package tokenizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/AntonioJCosta/dwimsh/internal/core/domain/command"
	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

// LineTokenizer splits input lines on blanks with no quoting or escaping.
type LineTokenizer struct{}

// NewLineTokenizer creates a new LineTokenizer.
func NewLineTokenizer() ports.Tokenizer {
	return &LineTokenizer{}
}

// Tokenize breaks a raw line into its argument vector.
// Everything from the first newline on is ignored.
func (t *LineTokenizer) Tokenize(line string) (command.ArgVector, error) {
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimRight(line, " \t\r")

	if n := utf8.RuneCountInString(line); n > command.MaxLineLength {
		return command.ArgVector{}, fmt.Errorf("%w: %d characters, limit is %d", command.ErrLineTooLong, n, command.MaxLineLength)
	}

	args, background := t.splitFields(line)
	if len(args) > command.MaxArgs {
		return command.ArgVector{}, fmt.Errorf("%w: %d tokens, limit is %d", command.ErrTooManyArgs, len(args), command.MaxArgs)
	}

	return command.ArgVector{
		Args:       args,
		Background: background,
		Line:       line,
	}, nil
}

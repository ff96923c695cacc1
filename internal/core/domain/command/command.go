/*
Package command defines the parsed form of one input line.
*/
package command

import (
	"errors"
	"strings"
)

const (
	// MaxLineLength is the longest accepted input line, in characters, excluding the newline.
	MaxLineLength = 80
	// MaxArgs is the largest number of tokens a single line may produce.
	MaxArgs = MaxLineLength / 2
)

var (
	// ErrLineTooLong is returned when a line exceeds MaxLineLength characters.
	ErrLineTooLong = errors.New("input line too long")
	// ErrTooManyArgs is returned when a line splits into more than MaxArgs tokens.
	ErrTooManyArgs = errors.New("too many arguments")
)

/*
ArgVector is the tokenized form of one input line.

Args never contains empty strings. Background is set when an '&' appeared
anywhere on the line. Line keeps the raw text up to the first newline, with
trailing whitespace removed, for built-ins and prompts that need it verbatim.
*/
type ArgVector struct {
	Args       []string
	Background bool
	Line       string
}

// Empty reports whether the line produced no tokens.
func (v ArgVector) Empty() bool {
	return len(v.Args) == 0
}

// Name returns the first token, or "" for an empty vector.
func (v ArgVector) Name() string {
	if len(v.Args) == 0 {
		return ""
	}
	return v.Args[0]
}

// Remainder returns the raw text following the first word of Line, leading separators included.
func (v ArgVector) Remainder() string {
	trimmed := strings.TrimLeft(v.Line, " \t")
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return ""
	}
	return trimmed[idx:]
}

// WithName returns a copy of v whose first token is replaced by name.
func (v ArgVector) WithName(name string) ArgVector {
	args := make([]string, 0, len(v.Args))
	args = append(args, name)
	if len(v.Args) > 1 {
		args = append(args, v.Args[1:]...)
	}
	return ArgVector{
		Args:       args,
		Background: v.Background,
		Line:       name + v.Remainder(),
	}
}

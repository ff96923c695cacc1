package terminal

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// ReadlineReader reads lines with cursor movement and in-session recall.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader creates a line-editing reader on the process terminal.
// Recall entries are added explicitly through SaveHistory and never written to disk.
func NewReadlineReader() (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		HistoryLimit:           100,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("initializing readline: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadLine implements the ports.LineReader interface.
// Ctrl-C discards the current line and returns it empty.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) {
			return "", nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return line, nil
}

// SaveHistory makes line available to up-arrow recall.
func (r *ReadlineReader) SaveHistory(line string) error {
	return r.rl.SaveHistory(line)
}

// Close implements the ports.LineReader interface.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

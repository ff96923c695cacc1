/*
Package terminal reads interactive input lines, either plainly through bufio or
with line editing through readline.
*/
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

// ErrInputRead indicates the input stream failed for a reason other than end of input.
var ErrInputRead = errors.New("error reading the command")

// BufferedReader reads newline-terminated lines from any io.Reader.
type BufferedReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewBufferedReader creates a reader that prints prompts to out and reads lines from in.
func NewBufferedReader(in io.Reader, out io.Writer) ports.LineReader {
	return &BufferedReader{in: bufio.NewReader(in), out: out}
}

// ReadLine implements the ports.LineReader interface.
// A final line without a newline is returned as is; the next call reports io.EOF.
func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSuffix(line, "\r"), nil
			}
			return "", io.EOF
		}
		return "", fmt.Errorf("%w: %w", ErrInputRead, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close implements the ports.LineReader interface.
func (r *BufferedReader) Close() error {
	return nil
}

/*
Open returns the reader for the shell's standard input.

Line editing is used only when requested and stdin is a terminal; if readline
cannot be set up the plain reader is used instead.
*/
func Open(lineEditing bool, logger *log.Logger) ports.LineReader {
	if lineEditing && isatty.IsTerminal(os.Stdin.Fd()) {
		rl, err := NewReadlineReader()
		if err == nil {
			return rl
		}
		logger.Warn("line editing unavailable, falling back to plain input", "err", err)
	}
	return NewBufferedReader(os.Stdin, os.Stdout)
}

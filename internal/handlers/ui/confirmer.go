package ui

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/dwimsh/internal/core/ports"
)

// TerminalConfirmer asks correction questions on the shell's own input.
type TerminalConfirmer struct {
	reader ports.LineReader
}

// NewTerminalConfirmer creates a confirmer that reads answers from reader.
func NewTerminalConfirmer(reader ports.LineReader) ports.Confirmer {
	return &TerminalConfirmer{reader: reader}
}

// Confirm implements the ports.Confirmer interface.
// Only the first word of the answer counts, and only "y" or "yes" accept.
func (c *TerminalConfirmer) Confirm(suggestion string) (bool, error) {
	question := WarningColor(fmt.Sprintf("Did you mean \"%s\"? [y/n] ", suggestion))
	answer, err := c.reader.ReadLine(question)
	if err != nil {
		return false, err
	}
	fields := strings.Fields(answer)
	if len(fields) == 0 {
		return false, nil
	}
	return fields[0] == "y" || fields[0] == "yes", nil
}

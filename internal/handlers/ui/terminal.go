package ui

import (
	"fmt"
	"io"
)

const clearSequence = "\033[H\033[2J"

// Banner is the greeting printed once at startup.
func Banner(version string) string {
	return WarningColor(fmt.Sprintf("Welcome to dwimsh %s, the do-what-I-mean shell", version))
}

// Prompt renders "name:cwd$ ".
func Prompt(name, cwd string) string {
	return fmt.Sprintf("%s:%s$ ", PromptNameColor(name), PromptPathColor(cwd))
}

// ClearScreen moves the cursor home and erases the display.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, clearSequence)
}

package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like pids
)

// Prompt Colors
var (
	PromptNameColor = color.New(color.FgGreen).SprintFunc()
	PromptPathColor = color.New(color.FgBlue).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// CycleColors is the rainbow used by the tepisan demo, in display order.
var CycleColors = []func(a ...interface{}) string{
	color.New(color.FgRed).SprintFunc(),
	color.New(color.FgYellow).SprintFunc(),
	color.New(color.FgGreen).SprintFunc(),
	color.New(color.FgBlue).SprintFunc(),
	color.New(color.FgMagenta).SprintFunc(),
	color.New(color.FgCyan).SprintFunc(),
}

// DisableColor turns off all escape sequences, including those already bound above.
func DisableColor() {
	color.NoColor = true
}

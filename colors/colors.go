package colors

import "github.com/fatih/color"

var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()

	// Heading is used for section titles in command output
	Heading = color.New(color.FgCyan, color.Bold).SprintFunc()
)

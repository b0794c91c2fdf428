package cliapp

import "github.com/fatih/color"

// Theme: green for success, red for errors, cyan for informational no-ops.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func PrintSuccess(msg string) {
	successColor.Println(msg)
}

func PrintInfo(msg string) {
	infoColor.Println(msg)
}

func PrintError(msg string) {
	errorColor.Fprintln(color.Error, msg)
}

package ui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// isTTY checks if stderr is a terminal. Status lines go to stderr so they
// never mix with markup written to stdout.
func isTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// colorize applies color only if output is a TTY
func colorize(color, msg string) string {
	if !isTTY() {
		return msg
	}
	return color + msg + Reset
}

// status formats a tagged status line.
func status(color, tag, msg string) string {
	return fmt.Sprintf("%s %s", colorize(color, "["+tag+"]"), msg)
}

// PrintOK prints a success message to stderr.
func PrintOK(msg string) {
	fmt.Fprintln(os.Stderr, status(Green, "OK", msg))
}

// PrintError prints an error message to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, status(Red, "ERROR", msg))
}

// PrintWarn prints a warning message to stderr.
func PrintWarn(msg string) {
	fmt.Fprintln(os.Stderr, status(Yellow, "WARN", msg))
}

// PrintTitle prints a section title with description to stderr.
func PrintTitle(title, desc string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", colorize(Bold+Cyan, "["+title+"]"), desc)
}

// Package ui provides terminal output helpers: colored status lines, plain
// tables, and a progress bar, all degrading gracefully off-terminal.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

var (
	isTerminal   = isatty.IsTerminal(os.Stdout.Fd())
	colorEnabled = true
)

// DisableColors disables all color output.
func DisableColors() {
	colorEnabled = false
	isTerminal = false
}

// IsTerminal checks if stdout is a terminal with colors enabled.
func IsTerminal() bool {
	return isTerminal && colorEnabled
}

// Section prints a section header.
func Section(title string) {
	fmt.Println()
	if IsTerminal() {
		fmt.Println("━━━ " + strings.ToUpper(title) + " ━━━")
	} else {
		fmt.Println(strings.ToUpper(title))
		fmt.Println(strings.Repeat("=", len(title)+6))
	}
}

// FormatYear renders a signed year with its era: -1610 -> "1610 BCE".
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d BCE", -year)
	}
	return fmt.Sprintf("%d CE", year)
}

package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// UseColor reports whether styled output should be emitted: stdout must be a
// terminal with at least basic color support.
func UseColor() bool {
	if !IsTerminal() {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Sprint renders s with the given style, or returns it unchanged when
// styling is off.
func Sprint(st lipgloss.Style, s string) string {
	if !UseColor() {
		return s
	}
	return st.Render(s)
}

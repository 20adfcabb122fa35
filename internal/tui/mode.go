package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects between plain and styled terminal output.
type OutputMode int

const (
	// ModePlain renders without ANSI styling. Used when stdout is not a
	// terminal or the user opted out via NO_COLOR.
	ModePlain OutputMode = iota
	// ModeStyled renders with lipgloss styling.
	ModeStyled
)

// defaultWidth is used when the terminal width cannot be determined.
const defaultWidth = 80

// DetectOutputMode inspects stdout and the environment to pick an output
// mode. NO_COLOR (any non-empty value) always forces plain output.
func DetectOutputMode() OutputMode {
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}
	return ModeStyled
}

// TerminalWidth returns the current terminal width, or a sensible default
// when stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// Package tui provides styled terminal rendering for analysis summaries.
// It decides between plain and styled output based on the terminal; the
// structured data it renders comes from the engine and stays untouched.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for styled output.
var (
	ColorHeader  = lipgloss.Color("36")  // cyan
	ColorLabel   = lipgloss.Color("245") // grey
	ColorValue   = lipgloss.Color("252") // near-white
	ColorOK      = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("214") // orange
	ColorMuted   = lipgloss.Color("240") // dark grey
	ColorBorder  = lipgloss.Color("240")
)

// Shared styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)

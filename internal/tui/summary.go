package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carbonlens/carbonlens/internal/engine"
)

// maxSummaryWidth caps the styled summary so ultra-wide terminals do not
// produce unreadable long lines.
const maxSummaryWidth = 100

// RenderSummary writes the human-readable half of a report: category
// totals, the baseline comparison, advice, the monthly goal check, and
// the equivalency line when present. precision is the number of decimal
// places for kgCO2 values. Plain mode emits unstyled text that is safe
// to pipe or redirect.
func RenderSummary(w io.Writer, mode OutputMode, width, precision int, report *engine.Report) {
	if mode == ModeStyled {
		renderStyled(w, width, precision, report)
		return
	}
	renderPlain(w, precision, report)
}

// kg formats a kgCO2 value at the requested precision.
func kg(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func renderPlain(w io.Writer, precision int, report *engine.Report) {
	total := report.Totals.Sum()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Category Totals (kgCO2):")
	for _, cat := range engine.Categories() {
		fmt.Fprintf(w, "  %-10s %s\n", string(cat)+":", kg(report.Totals[cat], precision))
	}
	fmt.Fprintf(w, "  %-10s %s\n", "total:", kg(total, precision))

	fmt.Fprintln(w)
	fmt.Fprintln(w, report.Comparison.Summary)
	fmt.Fprintln(w, "Advice:")
	fmt.Fprintln(w, report.Comparison.Advice)

	fmt.Fprintln(w, goalLine(total, report.GoalKg, precision))

	if report.EquivalencyText != "" {
		fmt.Fprintln(w, report.EquivalencyText)
	}
}

func renderStyled(w io.Writer, width, precision int, report *engine.Report) {
	if width > maxSummaryWidth {
		width = maxSummaryWidth
	}
	total := report.Totals.Sum()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Carbon Footprint Summary"))
	b.WriteString("\n\n")

	for _, cat := range engine.Categories() {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-10s", string(cat)+":")),
			valueStyle.Render(kg(report.Totals[cat], precision)+" kgCO2")))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-10s", "total:")),
		valueStyle.Render(kg(total, precision)+" kgCO2")))

	wrap := lipgloss.NewStyle().Width(width)

	b.WriteString("\n")
	b.WriteString(wrap.Render(report.Comparison.Summary))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Advice:"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(report.Comparison.Advice))
	b.WriteString("\n")

	goal := goalLine(total, report.GoalKg, precision)
	if total <= report.GoalKg {
		b.WriteString(okStyle.Render(goal))
	} else {
		b.WriteString(warnStyle.Render(goal))
	}
	b.WriteString("\n")

	if report.EquivalencyText != "" {
		b.WriteString(mutedStyle.Render(report.EquivalencyText))
		b.WriteString("\n")
	}

	fmt.Fprint(w, b.String())
}

// goalLine phrases the monthly goal check for both output modes.
func goalLine(total, goalKg float64, precision int) string {
	if total <= goalKg {
		return fmt.Sprintf("Within the monthly goal of %.0f kgCO2 (%s used).",
			goalKg, kg(total, precision))
	}
	return fmt.Sprintf("Over the monthly goal of %.0f kgCO2 by %s kgCO2.",
		goalKg, kg(total-goalKg, precision))
}

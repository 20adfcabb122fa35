package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/carbonlens/carbonlens/internal/config"
	"github.com/carbonlens/carbonlens/internal/engine"
	"github.com/carbonlens/carbonlens/internal/tui"
)

// renderReport writes the report in the requested format at the configured
// precision. Structured formats emit machine-readable output only; the
// table format appends the human summary, styled when stdout is an
// interactive terminal.
func renderReport(cmd *cobra.Command, format engine.OutputFormat, report *engine.Report) error {
	out := cmd.OutOrStdout()
	precision := config.GetOutputPrecision()

	if err := engine.RenderReportWithPrecision(out, format, report, precision); err != nil {
		return err
	}
	if format != engine.OutputTable {
		return nil
	}

	mode := tui.ModePlain
	if out == os.Stdout {
		mode = tui.DetectOutputMode()
	}
	tui.RenderSummary(out, mode, tui.TerminalWidth(), precision, report)
	return nil
}

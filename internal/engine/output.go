package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// OutputFormat selects how engine results are rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// IsValid reports whether the format is one of the supported formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputTable, OutputJSON, OutputNDJSON:
		return true
	default:
		return false
	}
}

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// DefaultPrecision is the number of decimal places rendered when no
// configured precision is supplied.
const DefaultPrecision = 2

// Report bundles everything an analysis produces: the per-record
// breakdowns, the aggregated totals, and the baseline comparison. It is
// plain data; presentation adapters decide how to show it.
type Report struct {
	Records         []Breakdown `json:"records"`
	Totals          Totals      `json:"totals"`
	Comparison      Comparison  `json:"comparison"`
	GoalKg          float64     `json:"goal_kg"`
	EquivalencyText string      `json:"equivalency,omitempty"`
}

// RenderResults writes breakdowns to w in the requested format with the
// default precision. Table output includes a trailing TOTAL row summing
// every category.
func RenderResults(w io.Writer, format OutputFormat, breakdowns []Breakdown) error {
	return RenderResultsWithPrecision(w, format, breakdowns, DefaultPrecision)
}

// RenderResultsWithPrecision is RenderResults with the number of decimal
// places in table values taken from the caller. JSON formats are
// unaffected: numbers round-trip as numbers there.
func RenderResultsWithPrecision(
	w io.Writer, format OutputFormat, breakdowns []Breakdown, precision int,
) error {
	switch format {
	case OutputTable:
		return renderTable(w, breakdowns, precision)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(breakdowns)
	case OutputNDJSON:
		enc := json.NewEncoder(w)
		for _, b := range breakdowns {
			if err := enc.Encode(b); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderReport writes a full report to w with the default precision. JSON
// emits the report as one document; NDJSON emits one record per line (the
// aggregate structures are a display concern there); table emits the
// record table only, leaving summary text to the caller.
func RenderReport(w io.Writer, format OutputFormat, report *Report) error {
	return RenderReportWithPrecision(w, format, report, DefaultPrecision)
}

// RenderReportWithPrecision is RenderReport with the table precision taken
// from the caller.
func RenderReportWithPrecision(
	w io.Writer, format OutputFormat, report *Report, precision int,
) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case OutputTable, OutputNDJSON:
		return RenderResultsWithPrecision(w, format, report.Records, precision)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderTable writes the per-record table with a trailing TOTAL row.
func renderTable(w io.Writer, breakdowns []Breakdown, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	cell := func(v float64) string {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}

	fmt.Fprintln(tw, "DATE\tTRANSPORT\tDIET\tENERGY\tWASTE\tTOTAL")
	for _, b := range breakdowns {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			b.Date.Format(dateLayout), cell(b.Transport), cell(b.Diet),
			cell(b.Energy), cell(b.Waste), cell(b.Total))
	}

	totals := Aggregate(breakdowns)
	fmt.Fprintf(tw, "TOTAL\t%s\t%s\t%s\t%s\t%s\n",
		cell(totals[CategoryTransport]), cell(totals[CategoryDiet]),
		cell(totals[CategoryEnergy]), cell(totals[CategoryWaste]), cell(totals.Sum()))

	return tw.Flush()
}

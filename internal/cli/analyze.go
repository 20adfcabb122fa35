package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/carbonlens/carbonlens/internal/config"
	"github.com/carbonlens/carbonlens/internal/engine"
	"github.com/carbonlens/carbonlens/internal/equiv"
)

// AnalyzeFlags holds the flags for the analyze command.
type AnalyzeFlags struct {
	Inputs []string
	Output string
}

// NewAnalyzeCmd creates the analyze command. It loads the given activity
// files, converts every row to an emission breakdown, aggregates category
// totals, compares them against the configured baseline, and renders the
// resulting report.
func NewAnalyzeCmd() *cobra.Command {
	var flags AnalyzeFlags

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Calculate and compare emissions from activity records",
		Example: `  # Analyze one file, render the record table plus summary
  carbonlens analyze --input activities.csv

  # Multiple inputs are loaded concurrently; record order follows flag order
  carbonlens analyze --input january.csv --input february.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := engine.OutputFormat(flags.Output)
			if flags.Output == "" {
				format = engine.OutputFormat(config.GetDefaultOutputFormat())
			}
			if !format.IsValid() {
				return fmt.Errorf("unsupported output format: %s", format)
			}
			return runAnalyze(cmd, flags.Inputs, format)
		},
	}

	cmd.Flags().StringArrayVar(&flags.Inputs, "input", nil,
		"activity file to analyze (.csv, .json, or .txt; repeatable)")
	cmd.Flags().StringVar(&flags.Output, "output", "",
		"output format: table, json, or ndjson (default from config)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runAnalyze(cmd *cobra.Command, inputs []string, format engine.OutputFormat) error {
	ctx := cmd.Context()

	session := engine.NewSession(engine.New(engine.DefaultFactors()), config.GetMonthlyGoal())

	// Inputs load concurrently; the per-index slice keeps the rendered
	// record order deterministic regardless of which file finishes first.
	results := make([][]engine.Breakdown, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range inputs {
		g.Go(func() error {
			breakdowns, err := session.ImportFile(gctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = breakdowns
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var records []engine.Breakdown
	for _, r := range results {
		records = append(records, r...)
	}

	totals := engine.Aggregate(records)
	comparison := engine.Compare(totals, baselineTotals(config.GetBaseline()))

	report := &engine.Report{
		Records:    records,
		Totals:     totals,
		Comparison: comparison,
		GoalKg:     session.GoalKg(),
	}
	if eq, err := equiv.Calculate(totals.Sum()); err == nil && !eq.IsEmpty {
		report.EquivalencyText = eq.DisplayText
	}

	logger.Debug().Ctx(ctx).
		Str("operation", "analyze").
		Int("inputs", len(inputs)).
		Int("records", len(records)).
		Float64("total_kg", totals.Sum()).
		Msg("analysis complete")

	return renderReport(cmd, format, report)
}

// baselineTotals converts the configured baseline into engine totals.
func baselineTotals(b config.BaselineConfig) engine.Totals {
	return engine.Totals{
		engine.CategoryTransport: b.Transport,
		engine.CategoryDiet:      b.Diet,
		engine.CategoryEnergy:    b.Energy,
		engine.CategoryWaste:     b.Waste,
	}
}

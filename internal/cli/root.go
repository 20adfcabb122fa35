// Package cli implements the carbonlens command tree.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carbonlens/carbonlens/internal/config"
	"github.com/carbonlens/carbonlens/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonlens CLI.
// It wires up configuration, logging, tracing, and the subcommands
// (analyze, validate, factors, config).
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:     "carbonlens",
		Short:   "Personal carbon footprint calculator",
		Long:    "Carbonlens: calculate, aggregate, and compare personal CO2 emissions from activity records",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.InitGlobalConfig()
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewAnalyzeCmd(), NewValidateCmd(), NewFactorsCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Analyze a month of activity records
  carbonlens analyze --input activities.csv

  # Analyze several files together and emit the full report as JSON
  carbonlens analyze --input january.csv --input february.json --output json

  # Check that a file has the required columns before analyzing it
  carbonlens validate activities.csv

  # Show the emission factor table
  carbonlens factors

  # Initialize configuration
  carbonlens config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}

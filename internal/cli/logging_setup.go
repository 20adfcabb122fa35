package cli

import (
	"github.com/spf13/cobra"

	"github.com/carbonlens/carbonlens/internal/config"
	"github.com/carbonlens/carbonlens/internal/logging"
)

// setupLogging configures logging based on the config file and CLI flags,
// and installs a trace-tagged logger on the command context.
func setupLogging(cmd *cobra.Command) logging.Result {
	loggingCfg := config.GetLoggingConfig()

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig())

	// Tag every line of this invocation with the trace ID so log output can
	// be correlated, and carry the ID on the context for callers that need it.
	traceID := logging.NewTraceID()
	logger = logging.ComponentLogger(result.Logger, "cli").
		With().Str("trace_id", traceID).Logger()

	ctx := logging.ContextWithTraceID(cmd.Context(), traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if one is open.
func cleanupLogging(logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}

package config

import "github.com/carbonlens/carbonlens/internal/logging"

// ToLoggingConfig converts a config.LoggingConfig to a logging.Config for
// use with the internal/logging package.
//
//   - Level and Format are copied directly.
//   - If File is set, Output becomes "file" and File is passed through.
//   - If File is empty, Output defaults to "stderr".
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := "stderr"
	if lc.File != "" {
		output = "file"
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// Package config manages the carbonlens configuration file and the global
// configuration singleton.
//
// Configuration lives at ~/.carbonlens/config.yaml and covers output
// preferences, logging, the comparison baseline, and the monthly emission
// goal. Emission factors are deliberately not configurable here: the factor
// table is fixed and only injectable programmatically for tests.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/carbonlens/carbonlens/internal/engine"
)

// Defaults applied by New when no config file overrides them. The
// numeric defaults come from the engine so there is a single source.
const (
	DefaultOutputFormat = "table"
	DefaultPrecision    = engine.DefaultPrecision
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"

	DefaultMonthlyGoalKg = engine.DefaultMonthlyGoalKg
)

// configDirName is the directory under the user home that holds the config.
const configDirName = ".carbonlens"

// configFileName is the name of the configuration file.
const configFileName = "config.yaml"

// Validation errors.
var (
	ErrInvalidOutputFormat = errors.New("output format must be 'table', 'json', or 'ndjson'")
	ErrInvalidPrecision    = errors.New("output precision must be between 0 and 6")
	ErrNegativeBaseline    = errors.New("baseline values cannot be negative")
	ErrNegativeGoal        = errors.New("monthly goal cannot be negative")
)

// maxPrecision is the largest supported output precision.
const maxPrecision = 6

// OutputConfig holds output rendering preferences.
type OutputConfig struct {
	// DefaultFormat is used when a command does not pass --output.
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	// Precision is the number of decimal places in rendered values.
	Precision int `yaml:"precision" json:"precision"`
}

// LoggingConfig holds the logging preferences.
type LoggingConfig struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string `yaml:"level" json:"level"`
	// Format selects "console" or "json" output.
	Format string `yaml:"format" json:"format"`
	// File, when set, redirects logs to the given path.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// BaselineConfig holds the per-category reference averages, in kgCO2,
// that batch totals are compared against.
type BaselineConfig struct {
	Transport float64 `yaml:"transport" json:"transport"`
	Diet      float64 `yaml:"diet"      json:"diet"`
	Energy    float64 `yaml:"energy"    json:"energy"`
	Waste     float64 `yaml:"waste"     json:"waste"`
}

// defaultBaseline pulls the default reference averages from the engine's
// baseline table so the values live in one place.
func defaultBaseline() BaselineConfig {
	b := engine.DefaultBaseline()
	return BaselineConfig{
		Transport: b[engine.CategoryTransport],
		Diet:      b[engine.CategoryDiet],
		Energy:    b[engine.CategoryEnergy],
		Waste:     b[engine.CategoryWaste],
	}
}

// Validate checks that no baseline value is negative.
func (b BaselineConfig) Validate() error {
	if b.Transport < 0 || b.Diet < 0 || b.Energy < 0 || b.Waste < 0 {
		return ErrNegativeBaseline
	}
	return nil
}

// Config is the root configuration structure.
type Config struct {
	Output   OutputConfig   `yaml:"output"   json:"output"`
	Logging  LoggingConfig  `yaml:"logging"  json:"logging"`
	Baseline BaselineConfig `yaml:"baseline" json:"baseline"`

	// GoalKg is the monthly emission goal in kgCO2. Recorded and reported,
	// not enforced by any calculation.
	GoalKg float64 `yaml:"goal_kg" json:"goal_kg"`
}

// New returns a Config populated with defaults, then overlaid with the
// contents of the config file when one exists. A missing or unreadable
// file is not an error; the defaults stand.
func New() *Config {
	cfg := &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Baseline: defaultBaseline(),
		GoalKg:   DefaultMonthlyGoalKg,
	}

	path, err := ConfigPath()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	// Invalid YAML is ignored rather than fatal; `config validate` reports it.
	_ = yaml.Unmarshal(data, cfg)
	return cfg
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case "table", "json", "ndjson":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, c.Output.Precision)
	}
	if err := c.Baseline.Validate(); err != nil {
		return err
	}
	if c.GoalKg < 0 {
		return fmt.Errorf("%w: got %.2f", ErrNegativeGoal, c.GoalKg)
	}
	return nil
}

// Save writes the configuration to the config file, creating the config
// directory when needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0750); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("writing config file: %w", writeErr)
	}
	return nil
}

// ConfigPath returns the path of the configuration file. The CARBONLENS_HOME
// environment variable overrides the user home directory, which tests rely on.
func ConfigPath() (string, error) {
	home := os.Getenv("CARBONLENS_HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

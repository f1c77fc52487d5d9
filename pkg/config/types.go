// Package config provides run configuration loading and validation for
// stationuptime.
package config

// Config is the root configuration structure. Every field is optional;
// DefaultConfig supplies the values used when no file is given.
type Config struct {
	// Output selects the result format: text, json or yaml.
	Output string `yaml:"output"`

	// Workers is the number of stations computed concurrently.
	Workers int `yaml:"workers"`

	// Verbose adds per-charger detail to json and yaml output.
	Verbose bool `yaml:"verbose"`

	// MetricsFile, when set, receives a Prometheus textfile export of the results.
	MetricsFile string `yaml:"metrics_file"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	// Level is a zerolog level name (debug, info, warn, error, disabled).
	Level string `yaml:"level"`

	// Format is console or json.
	Format string `yaml:"format"`
}

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

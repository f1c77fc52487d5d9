package config

// Default values for configuration.
const (
	DefaultOutput    = OutputText
	DefaultWorkers   = 1
	DefaultLogLevel  = "warn"
	DefaultLogFormat = LogFormatConsole
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:  DefaultOutput,
		Workers: DefaultWorkers,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

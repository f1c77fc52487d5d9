package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/stationuptime/pkg/config"
	"github.com/ccollicutt/stationuptime/pkg/logging"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

// BindGlobalFlags registers the shared flags as persistent flags on cmd.
func BindGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Run configuration file (.yaml, .yml or .json)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", config.DefaultLogLevel, "Diagnostic log level (debug|info|warn|error|disabled)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", config.DefaultLogFormat, "Diagnostic log format (console|json)")
}

// loadConfig reads the optional configuration file and applies explicitly
// set flags on top of it.
func loadConfig(ctx context.Context, cmd *cobra.Command, global *GlobalOptions, run *RunOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if global.ConfigFile != "" {
		loaded, err := config.Load(ctx, global.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = global.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = global.LogFormat
	}
	if run != nil {
		if flags.Changed("output") {
			cfg.Output = run.Output
		}
		if flags.Changed("workers") {
			cfg.Workers = run.Workers
		}
		if flags.Changed("verbose") {
			cfg.Verbose = run.Verbose
		}
		if flags.Changed("metrics-file") {
			cfg.MetricsFile = run.MetricsFile
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (zerolog.Logger, error) {
	return logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format, "stationuptime")
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

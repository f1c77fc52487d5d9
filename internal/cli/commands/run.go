package commands

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/stationuptime/pkg/config"
	"github.com/ccollicutt/stationuptime/pkg/metrics"
	"github.com/ccollicutt/stationuptime/pkg/output"
	"github.com/ccollicutt/stationuptime/pkg/parser"
	"github.com/ccollicutt/stationuptime/pkg/uptime"
)

// RunOptions holds command-line options for computing uptimes.
type RunOptions struct {
	Output      string
	Workers     int
	Verbose     bool
	MetricsFile string
}

// NewRunCommand creates the command that computes station uptimes. It is
// used as the root command.
func NewRunCommand(global *GlobalOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "stationuptime <input-file>",
		Short: "Compute charging station uptime from availability reports",
		Long: `stationuptime reads a list of stations and charger availability reports
and prints one "<station id> <uptime percent>" line per station, ascending by
station ID.

Input format:
  [Stations]
  <station id> <charger id> [<charger id> ...]

  [Charger Availability Reports]
  <charger id> <start nanos> <end nanos> <true|false>

On any error "ERROR" is printed to stdout, the reason to stderr, and the
exit status is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUptime(cmd, args, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json|yaml)")
	cmd.Flags().IntVar(&opts.Workers, "workers", config.DefaultWorkers, "Stations computed concurrently")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include per-charger detail in json/yaml output")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus textfile metrics to this path")

	return cmd
}

func runUptime(cmd *cobra.Command, args []string, global *GlobalOptions, opts *RunOptions) error {
	inputPath := args[0]
	ctx := commandContext(cmd)
	started := time.Now()

	cfg, err := loadConfig(ctx, cmd, global, opts)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	p := parser.New(parser.WithLogger(log))
	data, err := p.ParseFile(ctx, inputPath)
	if err != nil {
		return fmt.Errorf("processing %s: %w", inputPath, err)
	}

	calc := uptime.NewCalculator(uptime.WithWorkers(cfg.Workers), uptime.WithLogger(log))
	results, err := calc.Calculate(ctx, data)
	if err != nil {
		return fmt.Errorf("calculating uptime: %w", err)
	}

	report := output.NewReport(data, results, inputPath, len(p.Warnings()), started)

	formatter, err := output.NewFormatter(cfg.Output, output.FormatOptions{Verbose: cfg.Verbose})
	if err != nil {
		return err
	}

	// Render fully before writing so a late failure never leaves partial
	// results on stdout.
	var buf bytes.Buffer
	if err := formatter.Format(ctx, report, &buf); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if cfg.MetricsFile != "" {
		exporter := metrics.NewExporter()
		exporter.Record(data, report.Results)
		if err := exporter.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
		log.Debug().Str("path", cfg.MetricsFile).Msg("wrote metrics textfile")
	}

	if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

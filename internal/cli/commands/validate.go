package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/stationuptime/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <input-file>",
		Short: "Validate an input file",
		Long: `Validate a station availability file without computing uptime.

Checks:
  - Section headers and line formats
  - Numeric ranges for IDs and times
  - Unique station and charger IDs
  - Overlapping reports per charger
  - Reports for unknown chargers
  - Chargers without reports (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, global)
		},
	}
}

func runValidate(cmd *cobra.Command, args []string, global *GlobalOptions) error {
	inputPath := args[0]
	ctx := commandContext(cmd)

	cfg, err := loadConfig(ctx, cmd, global, nil)
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
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", inputPath)
	fmt.Fprintf(out, "\nInput valid!\n")
	fmt.Fprintf(out, "  Stations: %d\n", len(data.Stations))
	fmt.Fprintf(out, "  Chargers: %d\n", data.ChargerCount())
	fmt.Fprintf(out, "  Reports:  %d\n", len(data.Reports))

	if warnings := p.Warnings(); len(warnings) > 0 {
		fmt.Fprintf(out, "\nWarnings:\n")
		for _, w := range warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	return nil
}

// Package cli provides the command-line interface for stationuptime.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/stationuptime/internal/cli/commands"
)

// Execute runs the root command with the process arguments and returns the
// exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the CLI with the given arguments and streams. On any error
// it writes ERROR to stdout and the reason to stderr, and returns 1.
func Run(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(inputArgs(rootCmd, args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stdout, "ERROR")
		// SilenceErrors prevents Cobra from printing this itself.
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	globals := &commands.GlobalOptions{}

	rootCmd := commands.NewRunCommand(globals)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	commands.BindGlobalFlags(rootCmd, globals)

	rootCmd.AddCommand(commands.NewValidateCommand(globals))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}

// inputArgs keeps a lone argument that names an existing file from being
// dispatched as a subcommand. Cobra stops command lookup at "--", so the
// path reaches the root action unchanged.
func inputArgs(rootCmd *cobra.Command, args []string) []string {
	if len(args) != 1 || !isCommandName(rootCmd, args[0]) {
		return args
	}
	if info, err := os.Stat(args[0]); err != nil || info.IsDir() {
		return args
	}
	return []string{"--", args[0]}
}

func isCommandName(rootCmd *cobra.Command, name string) bool {
	if name == "help" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

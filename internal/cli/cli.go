// Package cli implements the xcover command-line interface.
//
// The CLI is the thin collaborator around the exactcover package: it parses
// a boolean incidence matrix from a file or stdin, invokes the solver, and
// renders the selected row indices (or a "no exact cover" message). The
// solver itself stays free of I/O concerns.
//
// # Commands
//
//   - solve: read a 0/1 matrix and print the rows of the first exact cover
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging via
// charmbracelet/log. Loggers travel through context.Context.
//
// # Example
//
//	import "github.com/katalvlaran/xcover/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the xcover CLI and returns an error if any command fails.
//
// The root command wires the solve subcommand and configures logging from
// the --verbose flag; the logger is attached to the command context and
// retrieved by subcommands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "xcover",
		Short:        "xcover finds exact covers of boolean incidence matrices",
		Long:         `xcover reads a boolean incidence matrix (rows = candidate subsets, columns = universe elements) and reports a sub-collection of rows covering every column exactly once, if one exists.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newSolveCmd())

	return root.ExecuteContext(ctx)
}

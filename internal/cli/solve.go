package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/xcover/exactcover"
)

// solveOpts carries the solve command flags.
type solveOpts struct {
	timeLimit time.Duration
	oneBased  bool
	verify    bool
}

// newSolveCmd builds the solve subcommand: read a matrix, run the solver,
// render the answer.
func newSolveCmd() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find an exact cover of a 0/1 incidence matrix",
		Long: `Read a boolean incidence matrix (one row per line, cells "1 0 1" or "101",
'#' comments and blank lines ignored) from a file or stdin, and print the
0-based indices of the rows forming the first exact cover found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return runSolve(cmd.Context(), in, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "soft wall-clock budget for the search (0 = none)")
	cmd.Flags().BoolVar(&opts.oneBased, "one-based", false, "print 1-based row indices")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "re-check the answer before printing")

	return cmd
}

// runSolve parses the matrix from in, solves it, and writes the rendered
// answer to out.
func runSolve(ctx context.Context, in io.Reader, out io.Writer, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	rel, err := parseRelation(in)
	if err != nil {
		return err
	}
	logger.Debug("parsed incidence matrix", "rows", rel.Rows(), "cols", rel.Cols())

	solverOpts := exactcover.DefaultOptions()
	solverOpts.TimeLimit = opts.timeLimit

	start := time.Now()
	rows, err := exactcover.Solve(rel, solverOpts)
	if err != nil {
		return err
	}
	logger.Debug("search finished", "selected", len(rows), "elapsed", time.Since(start).Round(time.Microsecond))

	// An empty answer over a non-empty universe means no cover exists; over
	// an empty universe it is the valid empty cover.
	if len(rows) == 0 && rel.Cols() > 0 {
		_, werr := fmt.Fprintln(out, "no exact cover")

		return werr
	}

	if opts.verify {
		if verr := exactcover.VerifyCover(rel, rows); verr != nil {
			return fmt.Errorf("cli: answer failed verification: %w", verr)
		}
		logger.Debug("answer verified")
	}

	rendered := make([]string, len(rows))
	for i, r := range rows {
		if opts.oneBased {
			r++
		}
		rendered[i] = fmt.Sprintf("%d", r)
	}
	_, werr := fmt.Fprintln(out, strings.Join(rendered, " "))

	return werr
}

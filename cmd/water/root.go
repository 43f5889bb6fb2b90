package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trivessel/puzzle"
	"github.com/katalvlaran/trivessel/vessel"
)

// errBadArgument marks input data errors (non-numeric, out of range),
// distinct from usage errors so main can map them to sysexits codes.
var errBadArgument = errors.New("invalid argument")

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "water LIMIT_1 LIMIT_2 LIMIT_3 TARGET",
		Short: "Solve the three water vessels, tap and sink problem",
		Long: `Solve the three water vessels, tap and sink problem: find the fewest
fill, drain and pour operations measuring an exact target volume,
starting from three empty vessels.`,
		Example:       "  water 3 5 8 4",
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveArgs(cmd, args, verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log per-level search diagnostics to stderr")

	return cmd
}

// solveArgs parses the four positional arguments, prints the GCD
// feasibility hint, runs the search, and renders the solution table.
func solveArgs(cmd *cobra.Command, args []string, verbose bool) error {
	out := cmd.OutOrStdout()

	var nums [4]vessel.Level
	for i, raw := range args {
		v, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return fmt.Errorf("%w %d: %q is not a volume in [0, %d]",
				errBadArgument, i+1, raw, vessel.MaxLevel)
		}
		nums[i] = vessel.Level(v)
	}
	for i := 0; i < vessel.Count; i++ {
		if nums[i] == 0 {
			return fmt.Errorf("%w %d: vessel capacity must be positive", errBadArgument, i+1)
		}
	}
	caps := vessel.Capacities{nums[0], nums[1], nums[2]}
	target := nums[3]

	// Advisory divisibility hint; the search below is the ground truth.
	if target%vessel.GCD(caps[0], caps[1], caps[2]) == 0 {
		fmt.Fprintln(out, "GCD indicates the puzzle is solvable!")
	} else {
		fmt.Fprintln(out, "GCD indicates the puzzle is unsolvable!")
	}

	var opts []puzzle.Option
	if verbose {
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		opts = append(opts, puzzle.WithOnLevel(func(step, frontier, discovered int) {
			logger.Info("bfs level explored",
				"step", step, "frontier", frontier, "discovered", discovered)
		}))
	}

	solver, err := puzzle.NewSolver(caps, opts...)
	if err != nil {
		return err
	}
	res, err := solver.Solve(target)
	if err != nil {
		return err
	}

	if res.Steps == 0 {
		fmt.Fprintln(out, "All vessels are empty initially, all have 0 liters of water, 0 steps!")
		return nil
	}

	fmt.Fprintf(out, "Solved: measure %d liters of water using %d, %d and %d liter vessels in %d steps\n",
		target, caps[0], caps[1], caps[2], res.Steps)
	fmt.Fprintln(out, renderTable(caps, res.Path))

	return nil
}

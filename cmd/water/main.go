// Command water solves the three water vessels, tap and sink problem:
// the fewest fill, drain and pour operations measuring an exact target
// volume, starting from three empty vessels.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/trivessel/puzzle"
)

// sysexits-style codes, matching the classic CLI convention for this
// puzzle.
const (
	exitOK          = 0
	exitUsage       = 64
	exitDataErr     = 65
	exitUnavailable = 69
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run wires the cobra command to explicit exit codes, so main stays a
// one-liner and tests can drive the whole CLI in-process.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errBadArgument):
		fmt.Fprintln(stderr, err)
		return exitDataErr
	case errors.Is(err, puzzle.ErrNoSolution):
		fmt.Fprintln(stderr, "No solution found!")
		return exitUnavailable
	default:
		// Wrong argument count or an unknown flag.
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
}

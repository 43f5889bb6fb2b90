// Package puzzle provides tunable options, sentinel errors, and the
// result type for the three-vessel pouring search.
package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/trivessel/vessel"
)

// Sentinel errors for puzzle solving.
var (
	// ErrNoSolution is returned when the reachable state graph is
	// exhausted without the target volume appearing in any vessel.
	// It is an expected terminal outcome, not a failure of the engine.
	ErrNoSolution = errors.New("puzzle: no reachable state holds the target volume")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")

	// ErrCorruptHistory indicates a malformed parent chain during path
	// reconstruction. It signals a bug in the search bookkeeping, never
	// a user-facing condition.
	ErrCorruptHistory = errors.New("puzzle: malformed parent chain in history")
)

// DefaultHistoryCapacity pre-sizes the history arena and visited set,
// saving reallocation on typical capacity triples.
const DefaultHistoryCapacity = 256

// Option configures a Solver via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation
// from NewSolver.
type Option func(*Options)

// Options holds parameters and callbacks to customize the search.
type Options struct {
	// HistoryCapacity pre-sizes the history arena and visited set.
	// Purely a performance knob; the structures grow as needed.
	HistoryCapacity int

	// OnLevel is called after each explored BFS level with the step
	// number, the width of the frontier just expanded, and the total
	// number of states discovered so far. The level on which the goal
	// is found may be reported before it is fully expanded.
	OnLevel func(step, frontier, discovered int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - HistoryCapacity = DefaultHistoryCapacity
//   - no-op OnLevel hook
func DefaultOptions() Options {
	return Options{
		HistoryCapacity: DefaultHistoryCapacity,
		OnLevel:         func(int, int, int) {},
		err:             nil,
	}
}

// WithHistoryCapacity pre-sizes the solver's internal structures.
//
//	n > 0: reserve room for n history entries
//	n == 0: keep the default
//	n < 0: invalid option → ErrOptionViolation
func WithHistoryCapacity(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: HistoryCapacity cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// keep default
		default:
			o.HistoryCapacity = n
		}
	}
}

// WithOnLevel registers a per-level callback, e.g. for search
// diagnostics.
func WithOnLevel(fn func(step, frontier, discovered int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Result holds the outcome of a successful solve:
//   - Steps: the minimum number of fill/drain/pour operations.
//   - Path: the Steps+1 states from the all-empty start to the goal,
//     each consecutive pair one legal transition apart.
type Result struct {
	Steps int
	Path  []vessel.State
}

// Goal returns the final state of the path, the one holding the target
// volume.
func (r *Result) Goal() vessel.State {
	return r.Path[len(r.Path)-1]
}

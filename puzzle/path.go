package puzzle

import (
	"fmt"

	"github.com/katalvlaran/trivessel/vessel"
)

// reconstruct walks parent indices from the history entry at goal back
// to the sentinel-parented root, returning the states in start→goal
// order. The walk must land on the root in exactly steps hops; anything
// else means the history bookkeeping is broken and yields
// ErrCorruptHistory.
func (s *Solver) reconstruct(goal, steps int) ([]vessel.State, error) {
	path := make([]vessel.State, steps+1)

	idx := goal
	for pos := steps; pos >= 0; pos-- {
		if idx < 0 || idx >= len(s.history) {
			return nil, fmt.Errorf("%w: index %d at path position %d", ErrCorruptHistory, idx, pos)
		}
		path[pos] = s.history[idx].state // save current
		idx = s.history[idx].parent      // travel back
	}
	if idx != invalidIndex {
		return nil, fmt.Errorf("%w: walk ended at index %d, want root sentinel", ErrCorruptHistory, idx)
	}

	return path, nil
}

// Package puzzle finds the shortest operation sequence measuring an
// exact volume of water with three vessels, a tap, and a sink, by
// breadth-first search over the implicit state graph of package vessel.
package puzzle

import (
	"github.com/katalvlaran/trivessel/vessel"
)

// invalidIndex is the sentinel parent of the root history entry.
const invalidIndex = -1

// step is one history arena entry: a discovered state plus the index of
// the entry whose expansion produced it. Indices, not pointers: the
// arena may reallocate as it grows.
type step struct {
	state  vessel.State
	parent int
}

// Solver owns the mutable search state for one capacity triple. It is
// reusable: each Solve call clears the history arena and visited set
// while keeping their backing storage. Not safe for concurrent use.
type Solver struct {
	caps    vessel.Capacities
	opts    Options
	history []step
	visited map[uint64]struct{}
}

// NewSolver builds a Solver for the given capacities, applying any
// number of functional Options. Returns ErrOptionViolation for invalid
// options.
func NewSolver(caps vessel.Capacities, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Solver{
		caps:    caps,
		opts:    o,
		history: make([]step, 0, o.HistoryCapacity),
		visited: make(map[uint64]struct{}, o.HistoryCapacity),
	}, nil
}

// Capacities returns the fixed capacity triple this solver searches
// under.
func (s *Solver) Capacities() vessel.Capacities {
	return s.caps
}

// Solve finds the minimum number of operations after which some vessel
// holds exactly target liters, starting from all vessels empty, and
// returns it together with the reconstructed shortest path.
// Returns ErrNoSolution once the reachable state graph is exhausted.
//
// Level-synchronous BFS: history entries [oldPtr, frontierEnd) form the
// current frontier; children are appended behind frontierEnd so one
// pass never treats a state as both parent and child. Termination is
// guaranteed — the state space is finite and each state enters the
// history at most once.
func (s *Solver) Solve(target vessel.Level) (*Result, error) {
	var start vessel.State
	if target == 0 {
		// All vessels begin empty: zero liters is measured in zero steps.
		return &Result{Steps: 0, Path: []vessel.State{start}}, nil
	}

	s.reset()

	// Neither draining everything nor filling everything is ever a new
	// discovery: the start is already history entry 0, and the all-full
	// state leads nowhere a cheaper state does not.
	s.visited[start.Key()] = struct{}{}
	s.visited[s.caps.Full().Key()] = struct{}{}
	s.history = append(s.history, step{state: start, parent: invalidIndex})

	steps := 0
	oldPtr := 0
	for oldPtr != len(s.history) {
		steps++

		frontierEnd := len(s.history)
		for ptr := oldPtr; ptr < frontierEnd; ptr++ {
			from := s.history[ptr].state

			for _, next := range vessel.NextStates(from, s.caps) {
				key := next.Key()
				if _, seen := s.visited[key]; seen {
					continue
				}
				s.visited[key] = struct{}{}
				s.history = append(s.history, step{state: next, parent: ptr})

				if next.Contains(target) {
					s.opts.OnLevel(steps, frontierEnd-oldPtr, len(s.history))
					path, err := s.reconstruct(len(s.history)-1, steps)
					if err != nil {
						return nil, err
					}

					return &Result{Steps: steps, Path: path}, nil
				}
			}
		}

		s.opts.OnLevel(steps, frontierEnd-oldPtr, len(s.history))
		oldPtr = frontierEnd
	}

	return nil, ErrNoSolution
}

// reset clears search state from a previous Solve call while keeping
// the allocated backing storage.
func (s *Solver) reset() {
	s.history = s.history[:0]
	clear(s.visited)
}

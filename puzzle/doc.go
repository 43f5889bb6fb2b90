// Package puzzle solves the classic three-vessel water-pouring puzzle:
// given three vessels of fixed capacity, a tap, and a sink, find the
// minimum number of fill/drain/pour operations after which some vessel
// holds an exact target volume, starting from all vessels empty.
//
// What
//
//   - Solver: a reusable search engine bound to one capacity triple.
//   - Solve(target): level-synchronous BFS over the implicit state
//     graph defined by vessel.NextStates, returning a Result with the
//     minimal step count and the full shortest path.
//   - History arena: discovered states live in one append-only slice;
//     each entry back-references its parent by index, so paths are
//     reconstructed in O(path length) without per-node path storage.
//   - Visited set: keyed by the collision-free vessel.State.Key
//     encoding for O(1) amortized membership tests.
//
// Why
//
//   - The state graph is implicit and can reach
//     (cap_0+1)×(cap_1+1)×(cap_2+1) states; BFS with arena-backed
//     parent pointers finds a shortest solution in one pass with O(1)
//     bookkeeping per discovered state.
//
// Determinism
//
//	Parents are expanded in discovery order and vessel.NextStates
//	enumerates children in a fixed order, so repeated runs with the
//	same capacities and target return an identical step count and an
//	identical path. Ties among equally short goals are broken by that
//	enumeration order, not by state value.
//
// Special cases
//
//   - target == 0 is solved by the initial state in 0 steps, without
//     searching.
//   - The all-empty and all-full states are seeded into the visited
//     set: re-entering either is never a new discovery.
//
// Complexity (S = number of reachable states)
//
//   - Time:   O(S)  (each state expanded once, ≤ 12 candidates each)
//   - Memory: O(S)  (history arena + visited set)
//
// Usage
//
//	solver, err := puzzle.NewSolver(vessel.Capacities{3, 5, 8})
//	if err != nil {
//	    // ErrOptionViolation
//	}
//	res, err := solver.Solve(4)
//	if err != nil {
//	    // ErrNoSolution once the state graph is exhausted
//	}
//	fmt.Println(res.Steps, res.Goal()) // 6 (3,4,0)
//
// Options
//
//   - DefaultOptions(): history capacity 256, no-op level hook.
//   - WithHistoryCapacity(n): pre-size the arena and visited set.
//   - WithOnLevel(fn): observe step number, frontier width, and
//     discovered-state count after each level.
//
// Errors
//
//   - ErrNoSolution      when no reachable state holds the target.
//   - ErrOptionViolation for an invalid Option (e.g. negative capacity).
//   - ErrCorruptHistory  if path reconstruction meets a malformed
//     parent chain (a bug signal, never expected in normal operation).
package puzzle

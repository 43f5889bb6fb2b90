// Package vessel models the state space of the three-vessel
// water-pouring puzzle: three vessels of fixed capacity, a tap, and a
// sink.
//
// What
//
//   - Level: a 16-bit water volume in liters (MaxLevel = 65535).
//   - State: the current level of each vessel — a comparable value type
//     with lexicographic Less, a Contains goal test, and a
//     collision-free mixed-radix Key for O(1) set membership.
//   - Capacities: the immutable per-vessel maxima, with Full() and the
//     Admits bounds predicate.
//   - NextStates: the pure transition generator producing every legal
//     fill, drain, and pour successor of a state, in a fixed order.
//   - GCD: the Euclidean divisibility helper behind the classic
//     solvability hint.
//
// Why
//
//   - The puzzle's implicit graph has one vertex per State and one edge
//     per legal transition; this package is the graph, the search lives
//     in package puzzle.
//
// Determinism
//
//	NextStates enumerates candidates per source vessel in the order
//	fill, drain, pour→each destination by ascending index. Search built
//	on top of it is therefore fully reproducible.
//
// Complexity
//
//   - NextStates: O(1) time (at most MaxTransitions = 12 candidates),
//     one slice allocation.
//   - State.Key, Contains, Less: O(1), allocation-free.
//
// Errors
//
//   - ErrVesselIndex  if Pour is given an index outside [0, Count).
//   - ErrIllegalPour  if a pour's preconditions do not hold.
package vessel

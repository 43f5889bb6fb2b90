// Package trivessel solves the classic three-vessel water-pouring
// puzzle: three vessels of fixed capacity, a tap, a sink, and the
// question of how few fill, drain and pour operations measure an exact
// volume of water.
//
// 🚀 What is trivessel?
//
//	A small, deterministic state-space search library plus CLI:
//		• vessel/  — Level, State and Capacities value types, the pure
//		  transition generator, and the GCD solvability hint
//		• puzzle/  — the reusable BFS Solver with its history arena,
//		  visited set, and shortest-path reconstruction
//		• cmd/water — the command-line front end with the classic
//		  step-by-step solution table
//
// ✨ Why choose trivessel?
//
//   - Provably minimal – level-synchronous BFS returns the shortest
//     operation sequence, cross-checked against brute force in tests
//   - Deterministic – fixed transition order, reproducible paths
//   - Reusable – one Solver serves many targets without reallocation
//   - Hooks – observe every search level (OnLevel) for diagnostics
//
// Quick taste:
//
//	solver, _ := puzzle.NewSolver(vessel.Capacities{3, 5, 8})
//	res, _ := solver.Solve(4)
//	fmt.Println(res.Steps) // 6
//
// Or from the shell:
//
//	water 3 5 8 4
//
// Dive into examples/ for runnable demos and the per-package doc.go
// files for algorithmic details.
package trivessel

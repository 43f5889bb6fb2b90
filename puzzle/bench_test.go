package puzzle_test

import (
	"testing"

	"github.com/katalvlaran/trivessel/puzzle"
	"github.com/katalvlaran/trivessel/vessel"
)

// BenchmarkSolve_Classic measures the reference 3/5/8 puzzle.
func BenchmarkSolve_Classic(b *testing.B) {
	solver, err := puzzle.NewSolver(vessel.Capacities{3, 5, 8})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(4); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Wide explores a state space of roughly 50k states:
// coprime capacities make every target reachable, and target 1 sits
// deep in the graph.
func BenchmarkSolve_Wide(b *testing.B) {
	solver, err := puzzle.NewSolver(
		vessel.Capacities{29, 31, 37},
		puzzle.WithHistoryCapacity(1<<16),
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Exhaustion forces a full sweep of the reachable graph
// before reporting no solution.
func BenchmarkSolve_Exhaustion(b *testing.B) {
	solver, err := puzzle.NewSolver(vessel.Capacities{12, 24, 36})
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Solve(5); err != puzzle.ErrNoSolution {
			b.Fatalf("want ErrNoSolution, got %v", err)
		}
	}
}

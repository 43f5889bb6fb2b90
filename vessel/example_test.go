package vessel_test

import (
	"fmt"

	"github.com/katalvlaran/trivessel/vessel"
)

// ExampleNextStates lists every legal move out of a mid-game state with
// the classic 3, 5 and 8 liter vessels.
func ExampleNextStates() {
	caps := vessel.Capacities{3, 5, 8}
	for _, next := range vessel.NextStates(vessel.State{3, 2, 0}, caps) {
		fmt.Println(next)
	}
	// Output:
	// (0,2,0)
	// (0,5,0)
	// (0,2,3)
	// (3,0,0)
	// (3,0,2)
	// (3,2,8)
}

// ExampleGCD shows the divisibility hint behind the classic
// solvability check: 4 liters are measurable with 3, 5 and 8 liter
// vessels, 5 liters are not with 2, 4 and 6.
func ExampleGCD() {
	fmt.Println(4 % vessel.GCD(3, 5, 8))
	fmt.Println(5 % vessel.GCD(2, 4, 6))
	// Output:
	// 0
	// 1
}

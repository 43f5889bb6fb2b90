// Package vessel defines core value types and sentinel errors
// for the trivessel puzzle: water levels, vessel states, and capacities.
package vessel

import (
	"errors"
	"fmt"
)

// Sentinel errors for vessel operations.
var (
	// ErrVesselIndex indicates a vessel index outside [0, 3).
	ErrVesselIndex = errors.New("vessel: vessel index out of range")
	// ErrIllegalPour indicates a pour whose preconditions do not hold:
	// same source and destination, empty source, or full destination.
	ErrIllegalPour = errors.New("vessel: illegal pour")
)

// Count is the number of vessels in the puzzle.
const Count = 3

// Level measures the volume of water in one vessel, in liters.
// The supported width is 16 bits: no valid capacity or level may exceed
// MaxLevel, and State.Key relies on that bound for collision-freedom.
type Level uint16

// MaxLevel is the largest representable water level (and capacity).
const MaxLevel Level = 1<<16 - 1

// State is the current water level of each of the three vessels.
// It is a comparable value type: two states are equal iff all three
// levels match; Less provides the lexicographic total order.
type State [Count]Level

// Key returns a mixed-radix encoding of the state with radix 2^16:
//
//	key = (level_0 * 2^16 + level_1) * 2^16 + level_2
//
// No two distinct states share a key for the full 16-bit level range,
// so Key may back set membership directly.
func (s State) Key() uint64 {
	return uint64(s[0])<<32 | uint64(s[1])<<16 | uint64(s[2])
}

// Contains reports whether any vessel holds exactly v liters.
func (s State) Contains(v Level) bool {
	return s[0] == v || s[1] == v || s[2] == v
}

// Less reports whether s precedes o in lexicographic order.
func (s State) Less(o State) bool {
	for i := 0; i < Count; i++ {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// String renders the state as "(a,b,c)".
func (s State) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}

// Capacities is the fixed maximum volume of each vessel, immutable for
// the lifetime of a search. A zero capacity makes that vessel inert but
// is not itself an error; the CLI layer rejects non-positive capacities.
type Capacities [Count]Level

// Full returns the state in which every vessel holds its capacity.
func (c Capacities) Full() State {
	return State(c)
}

// Admits reports whether s respects 0 ≤ level_i ≤ capacity_i for all i.
func (c Capacities) Admits(s State) bool {
	return s[0] <= c[0] && s[1] <= c[1] && s[2] <= c[2]
}

// String renders the capacities as "(a,b,c)".
func (c Capacities) String() string {
	return State(c).String()
}

package vessel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trivessel/vessel"
)

// TestState_Equality exercises the comparable-value contract mirrored
// from the classic puzzle states.
func TestState_Equality(t *testing.T) {
	assert.Equal(t, vessel.State{1, 2, 3}, vessel.State{1, 2, 3})
	assert.NotEqual(t, vessel.State{1, 2, 3}, vessel.State{2, 2, 3})
	assert.NotEqual(t, vessel.State{1, 2, 3}, vessel.State{1, 2, 8})
}

// TestState_Less verifies the lexicographic total order.
func TestState_Less(t *testing.T) {
	cases := []struct {
		a, b vessel.State
		want bool
	}{
		{vessel.State{1, 2, 3}, vessel.State{1, 2, 4}, true},
		{vessel.State{2, 2, 3}, vessel.State{1, 2, 4}, false},
		{vessel.State{1, 2, 3}, vessel.State{1, 2, 3}, false},
		{vessel.State{0, 9, 9}, vessel.State{1, 0, 0}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.a.Less(tc.b), "%v < %v", tc.a, tc.b)
	}
}

// TestState_Key_CollisionFree checks the mixed-radix encoding on the
// corners of the 16-bit level range and on neighbor states that a
// weaker radix would conflate.
func TestState_Key_CollisionFree(t *testing.T) {
	states := []vessel.State{
		{0, 0, 0},
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, vessel.MaxLevel},
		{0, 1, 0}, // dup on purpose: same state, same key
		{0, vessel.MaxLevel, 0},
		{vessel.MaxLevel, 0, 0},
		{vessel.MaxLevel, vessel.MaxLevel, vessel.MaxLevel},
		{1, vessel.MaxLevel, vessel.MaxLevel},
		{3, 5, 8},
		{3, 4, 0},
	}
	seen := make(map[uint64]vessel.State, len(states))
	for _, s := range states {
		key := s.Key()
		if prev, ok := seen[key]; ok {
			require.Equal(t, prev, s, "states %v and %v collide on key %d", prev, s, key)
		}
		seen[key] = s
	}
}

// TestState_Contains covers the goal test, including zero.
func TestState_Contains(t *testing.T) {
	s := vessel.State{3, 4, 0}
	assert.True(t, s.Contains(3))
	assert.True(t, s.Contains(4))
	assert.True(t, s.Contains(0))
	assert.False(t, s.Contains(7))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "(3,5,8)", vessel.State{3, 5, 8}.String())
	assert.Equal(t, "(0,0,0)", vessel.State{}.String())
}

// TestCapacities_FullAndAdmits checks the bounds predicate against the
// all-full state and one-past-capacity states.
func TestCapacities_FullAndAdmits(t *testing.T) {
	caps := vessel.Capacities{3, 5, 8}
	require.Equal(t, vessel.State{3, 5, 8}, caps.Full())
	assert.True(t, caps.Admits(vessel.State{}))
	assert.True(t, caps.Admits(caps.Full()))
	assert.False(t, caps.Admits(vessel.State{4, 0, 0}))
	assert.False(t, caps.Admits(vessel.State{0, 6, 0}))
	assert.False(t, caps.Admits(vessel.State{0, 0, 9}))
}

// TestGCD mirrors the reference values of the original divisibility
// helper, plus the variadic fold and the zero edge.
func TestGCD(t *testing.T) {
	cases := []struct {
		name string
		got  vessel.Level
		want vessel.Level
	}{
		{"pair 2,4", vessel.GCD(2, 4), 2},
		{"pair 3,15", vessel.GCD(3, 15), 3},
		{"pair 12,15", vessel.GCD(12, 15), 3},
		{"pair 1071,462", vessel.GCD(1071, 462), 21},
		{"triple 1071,462,84", vessel.GCD(1071, 462, 84), 21},
		{"single", vessel.GCD(7), 7},
		{"with zero", vessel.GCD(6, 0, 9), 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

package vessel

// MaxTransitions bounds the candidates one state can produce:
// 3 fills + 3 drains + 6 pours. The real count is usually lower since
// fill and drain exclude each other per vessel.
const MaxTransitions = 12

// NextStates enumerates every legal single-operation successor of s
// under caps, in a fixed order per source vessel: fill, drain, then
// pours into each other vessel by ascending index. The result never
// contains s itself and every entry satisfies caps.Admits.
//
// Fill applies only to an empty vessel: topping up a partial vessel
// from the tap never shortens a solution (cross-checked against the
// unpruned search in the tests). Drain applies only to a non-empty
// vessel, and a pour needs water in the source and room in the
// destination, so no transition is a no-op.
//
// Pure function; the single allocation is the result slice.
func NextStates(s State, caps Capacities) []State {
	result := make([]State, 0, MaxTransitions)

	for from := 0; from < Count; from++ {
		// Fill from the tap. The capacity guard keeps a zero-capacity
		// vessel from producing a no-op fill.
		if s[from] == 0 && caps[from] > 0 {
			next := s
			next[from] = caps[from]
			result = append(result, next)
		}

		// Drain into the sink.
		if s[from] != 0 {
			next := s
			next[from] = 0
			result = append(result, next)
		}

		// Pour into each other vessel.
		for to := 0; to < Count; to++ {
			if from != to && s[to] < caps[to] && s[from] > 0 {
				result = append(result, pour(s, from, to, caps))
			}
		}
	}

	return result
}

// pour moves min(s[from], free space of to) liters between vessels.
// Exactly one of "source empties" or "destination fills" happens;
// when the amounts coincide both hold and the outcomes agree.
// Preconditions (from != to, s[from] > 0, s[to] < caps[to]) are the
// caller's responsibility.
func pour(s State, from, to int, caps Capacities) State {
	next := s
	free := caps[to] - s[to]
	if s[from] <= free {
		next[to] += s[from]
		next[from] = 0
	} else {
		next[to] = caps[to]
		next[from] -= free
	}

	return next
}

// Pour validates and applies a single pour transition, for callers that
// replay or probe individual operations. Returns ErrVesselIndex for an
// index outside [0, Count), ErrIllegalPour when the preconditions of a
// pour do not hold.
func Pour(s State, from, to int, caps Capacities) (State, error) {
	if from < 0 || from >= Count || to < 0 || to >= Count {
		return State{}, ErrVesselIndex
	}
	if from == to || s[from] == 0 || s[to] >= caps[to] {
		return State{}, ErrIllegalPour
	}

	return pour(s, from, to, caps), nil
}

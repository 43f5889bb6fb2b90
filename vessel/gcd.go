package vessel

// GCD returns the greatest common divisor of its arguments, folding the
// two-argument Euclidean form over the rest. GCD(x) == x and
// GCD(x, 0) == x, so a zero capacity never poisons the result.
//
// The solvability hint `target mod GCD(capacities) == 0` is advisory:
// the search itself is the ground truth.
func GCD(first Level, rest ...Level) Level {
	g := first
	for _, v := range rest {
		g = gcd(g, v)
	}

	return g
}

// gcd is the classic recursive Euclidean form.
func gcd(lhs, rhs Level) Level {
	if rhs == 0 {
		return lhs
	}

	return gcd(rhs, lhs%rhs)
}

package aoc

// --- Pair ------------------------------------------------------------------

// Pair is an ordered pair of comparable values. Pairs may be used as map keys.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P creates a Pair from two values.
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of p.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

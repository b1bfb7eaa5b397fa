package gradient

import (
	"math"
)

// Epsilon is the tolerance used when comparing colors and positions.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// clamp01 clamps x to the range [0,1].
func clamp01(x float64) float64 {
	if x < 0.0 {
		return 0.0
	} else if 1.0 < x {
		return 1.0
	}
	return x
}

// lerp linearly interpolates between a and b, with t=0 giving a and t=1 giving b.
func lerp(a, b, t float64) float64 {
	return (1.0-t)*a + t*b
}

// indexOf returns the table index closest to position f ∈ [0,1] for a table of n entries.
func indexOf(f float64, n int) int {
	return int(math.Round(clamp01(f) * float64(n-1)))
}

// positionOf returns the position in [0,1] of table index i for a table of n entries.
func positionOf(i, n int) float64 {
	if n < 2 {
		return 0.0
	}
	return float64(i) / float64(n-1)
}

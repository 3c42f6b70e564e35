// Package numeric provides small generic math helpers.
package numeric

import "golang.org/x/exp/constraints"

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[N constraints.Ordered](v, lo, hi N) N {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

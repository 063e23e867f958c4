// Package phi provides golden-ratio primitives shared by eigenvalue
// classification and constant derivation.
//
// All helpers are deterministic with respect to their inputs: the same
// arguments always produce the same float64 result, bit for bit.
package phi

import "math"

// Phi is the golden ratio (1+√5)/2.
const Phi = 1.618033988749894848204586834365638118

// Inv is the reciprocal golden ratio 1/φ = φ-1.
const Inv = 0.618033988749894848204586834365638118

// Epsilon is the package tolerance for float comparisons.
// Derived quantities here survive at most a handful of multiplications,
// so 1e-9 leaves ample headroom over accumulated rounding error.
const Epsilon = 1e-9

// Pow returns φ^n for any signed integer n.
func Pow(n int) float64 {
	return math.Pow(Phi, float64(n))
}

// Equal reports whether a and b agree within Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

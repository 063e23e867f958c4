// Package firm is the categorical foundation for φ-recursive physics
// derivations: a stratified universe hierarchy, a presheaf category
// with an approximated Yoneda embedding, and a category of Grace-stable
// fixed points from which gauge groups, spacetime dimensionality and
// φ-power coupling constants are read off.
//
// The Foundation struct is the capability registry tying the pieces
// together. Build one with New, run Bootstrap, then query the
// fixed-point category for derived reports:
//
//	f := firm.New()
//	if err := f.Bootstrap(); err != nil {
//		// a law check failed during startup
//	}
//	dim, _ := f.FixedPoints.SpacetimeDimensionality()
//
// Everything is in-memory and deterministic. There are no global
// singletons; every dependency flows through the Foundation.
package firm

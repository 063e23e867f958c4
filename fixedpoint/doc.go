// Package fixedpoint implements the category of Grace-stable
// structures: presheaves isomorphic to their own image under the Grace
// operator, related by Grace-equivariant morphisms.
//
// Candidate structures move through a single state transition: they
// are unverified until AddFixedPoint runs the fixed-point law, which
// either admits them into the registry or rejects them with a
// validation error. Admitted structures are further classified, purely
// and re-computably, from their eigenvalue spectra.
//
// The equivariance and fixed-point checks here are documented partial
// proxies (tag compatibility, key-set and cardinality comparisons),
// not categorical proofs. Downstream derivation callers depend on this
// exact pass/fail behavior.
package fixedpoint

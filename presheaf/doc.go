// Package presheaf implements the presheaf category over the universe
// hierarchy: a registry of presheaf-like structures, the Yoneda
// embedding, minimal topos-capability checks, and the Grace operator
// acting on registered structures.
//
// The law checks in this package (functoriality, the Yoneda report,
// the topos report, presheaf isomorphism) are documented partial
// proxies. They compare tags, key sets and symbolic composition traces
// rather than proving categorical statements; downstream callers
// depend on exactly this pass/fail behavior, so the checks must not be
// silently strengthened into full proofs.
package presheaf

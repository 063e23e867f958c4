// Package universe implements the stratified hierarchy of set-theoretic
// levels underneath the presheaf category.
//
// Stratification is the invariant that level n contains exactly levels
// 0..n-1. Containment sets are computed directly from the level index,
// never built by set-theoretic construction, which is what keeps the
// totality view paradox-safe: no level is ever a member of itself.
package universe

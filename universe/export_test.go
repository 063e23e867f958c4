package universe

// BreakLevel corrupts the containment set of level n so tests can reach
// the defensive stratification failure paths.
func (h *Hierarchy) BreakLevel(n int) {
	if h == nil || n < 0 || n >= len(h.levels) {
		return
	}
	h.levels[n].Contained = append(h.levels[n].Contained, n)
}

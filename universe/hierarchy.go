package universe

import (
	"fmt"

	ferrors "github.com/ktynski/firm/errors"
)

// Level is one stratum of the universe hierarchy.
//
// Levels are value objects: once built their fields are never mutated.
// Contained holds the indices of every lower level in ascending order,
// and must equal exactly {0, ..., Index-1}.
type Level struct {
	Index          int
	CardinalityTag string
	Contained      []int
}

// Contains reports whether the level contains level m.
func (l Level) Contains(m int) bool {
	return m >= 0 && m < l.Index
}

// Totality is the colimit marker over all constructed levels.
//
// It is a pure value: two totalities over the same hierarchy compare
// equal with ==. It deliberately carries no reference back into the
// hierarchy, so holding a Totality cannot create self-containment.
type Totality struct {
	Levels         int
	CardinalityTag string
}

// TotalityTag is the cardinality tag of the colimit over all levels.
const TotalityTag = "aleph_omega"

// Hierarchy is a strictly increasing chain of universe levels.
type Hierarchy struct {
	levels    []Level
	selfRefOn bool
}

// New constructs a hierarchy with levels 0..maxLevel.
// A negative maxLevel yields an empty hierarchy, not an error.
func New(maxLevel int) *Hierarchy {
	if maxLevel < 0 {
		return &Hierarchy{}
	}
	levels := make([]Level, 0, maxLevel+1)
	for n := 0; n <= maxLevel; n++ {
		levels = append(levels, newLevel(n))
	}
	return &Hierarchy{levels: levels}
}

// newLevel builds level n with containment computed from the index.
func newLevel(n int) Level {
	contained := make([]int, n)
	for i := 0; i < n; i++ {
		contained[i] = i
	}
	return Level{
		Index:          n,
		CardinalityTag: fmt.Sprintf("aleph_%d", n),
		Contained:      contained,
	}
}

// Level returns the level at index n. The second return value is false
// when no such level was constructed; lookups never fail with an error.
func (h *Hierarchy) Level(n int) (Level, bool) {
	if h == nil || n < 0 || n >= len(h.levels) {
		return Level{}, false
	}
	return h.levels[n], true
}

// Len returns the number of constructed levels.
func (h *Hierarchy) Len() int {
	if h == nil {
		return 0
	}
	return len(h.levels)
}

// Levels returns a snapshot of all constructed levels in order.
func (h *Hierarchy) Levels() []Level {
	if h == nil {
		return nil
	}
	out := make([]Level, len(h.levels))
	copy(out, h.levels)
	return out
}

// VerifyStratification reports whether every constructed level contains
// exactly the set of lower-index levels.
func (h *Hierarchy) VerifyStratification() bool {
	_, ok := h.findBrokenLevel()
	return !ok
}

// findBrokenLevel returns the first level violating stratification.
func (h *Hierarchy) findBrokenLevel() (int, bool) {
	if h == nil {
		return 0, false
	}
	for position, level := range h.levels {
		if level.Index != position {
			return position, true
		}
		if len(level.Contained) != level.Index {
			return level.Index, true
		}
		for i, m := range level.Contained {
			if m != i {
				return level.Index, true
			}
		}
	}
	return 0, false
}

// Totality returns the colimit marker over all levels.
//
// It fails with an INVALID_STATE error unless stratification holds.
// Under correct construction that failure is unreachable; the check is
// kept because the totality is the one place a broken chain would turn
// into a paradox. Repeated calls return structurally equal totalities.
func (h *Hierarchy) Totality() (Totality, error) {
	if level, broken := h.findBrokenLevel(); broken {
		return Totality{}, ferrors.WithMetadata(
			ferrors.CodeInvalidStateStratification,
			fmt.Sprintf("stratification broken at level %d", level),
			map[string]string{"Level": fmt.Sprintf("%d", level)},
		)
	}
	return Totality{
		Levels:         h.Len(),
		CardinalityTag: TotalityTag,
	}, nil
}

// EnableSelfReference idempotently constructs the totality and marks
// the hierarchy as a safe foundation for indirect self-reference.
// It returns true when the totality is available.
func (h *Hierarchy) EnableSelfReference() bool {
	if h == nil {
		return false
	}
	if h.selfRefOn {
		return true
	}
	if _, err := h.Totality(); err != nil {
		return false
	}
	h.selfRefOn = true
	return true
}

// SelfReferenceEnabled reports whether EnableSelfReference succeeded.
func (h *Hierarchy) SelfReferenceEnabled() bool {
	return h != nil && h.selfRefOn
}

package fixedpoint

import (
	"math/cmplx"

	"github.com/ktynski/firm/phi"
)

// Stability describes the dynamical behavior of a fixed point.
type Stability int

const (
	StabilityUnspecified Stability = iota
	StabilityAttracting
	StabilityRepelling
	StabilityNeutral
	StabilitySaddle
	// StabilityPhysical marks a fixed point declared to model a
	// physical system; its computed classification must still come out
	// attracting for the declaration to be realizable.
	StabilityPhysical
)

func (s Stability) String() string {
	switch s {
	case StabilityUnspecified:
		return "Unspecified"
	case StabilityAttracting:
		return "Attracting"
	case StabilityRepelling:
		return "Repelling"
	case StabilityNeutral:
		return "Neutral"
	case StabilitySaddle:
		return "Saddle"
	case StabilityPhysical:
		return "Physical"
	default:
		return "Unknown"
	}
}

// ClassifyStability derives stability from an eigenvalue spectrum:
// all magnitudes below one is attracting, all above one repelling,
// all on the unit circle neutral, and any mixture a saddle. An empty
// spectrum is unspecified. The classification is pure: it can be
// recomputed at any time from the eigenvalue list alone.
func ClassifyStability(eigenvalues []complex128) Stability {
	if len(eigenvalues) == 0 {
		return StabilityUnspecified
	}

	below, above, on := 0, 0, 0
	for _, ev := range eigenvalues {
		magnitude := cmplx.Abs(ev)
		switch {
		case phi.Equal(magnitude, 1):
			on++
		case magnitude < 1:
			below++
		default:
			above++
		}
	}

	switch {
	case below == len(eigenvalues):
		return StabilityAttracting
	case above == len(eigenvalues):
		return StabilityRepelling
	case on == len(eigenvalues):
		return StabilityNeutral
	default:
		return StabilitySaddle
	}
}

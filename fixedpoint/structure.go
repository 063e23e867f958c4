package fixedpoint

import (
	"github.com/ktynski/firm/presheaf"
)

// Structure is a Grace-stable candidate: a presheaf plus the physical
// metadata attached to its fixed point.
//
// Identity and equality are keyed by Name only, never by the nested
// collections: two structures with the same name denote the same fixed
// point regardless of metadata drift.
type Structure struct {
	Name             string
	Presheaf         presheaf.Structure
	Stability        Stability
	PhysicalSystem   string
	Eigenvalues      []complex128
	ConvergenceRate  float64
	DerivedConstants map[string]float64
	SymmetryGroup    string
}

// ObjectID returns the stable identifier structures are keyed by.
func (s Structure) ObjectID() string {
	return s.Name
}

// Equal reports whether two structures denote the same fixed point.
func (s Structure) Equal(o Structure) bool {
	return s.Name == o.Name
}

// VerifyFixedPointProperty reports whether the underlying presheaf is
// isomorphic to its own image under the Grace operator: same kind,
// same representing object, same fiber key set, and functorial on
// both sides of the application.
func (s Structure) VerifyFixedPointProperty() bool {
	image := presheaf.Grace.Apply(s.Presheaf)
	return presheaf.Isomorphic(s.Presheaf, image)
}

// Classify recomputes the stability classification from the
// eigenvalue spectrum.
func (s Structure) Classify() Stability {
	return ClassifyStability(s.Eigenvalues)
}

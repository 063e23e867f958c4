package presheaf

// Operator is the Grace endofunctor 𝒢 acting on presheaf structures.
//
// Applying it relabels every fiber element with a grace mark while
// preserving the structure's kind, representing object and fiber key
// set. A structure is Grace-stable exactly when this image remains
// isomorphic to the original under Isomorphic.
type Operator struct{}

// Grace is the designated endofunctor instance used by the foundation.
var Grace = Operator{}

// Mark is the prefix Grace stamps on every fiber element.
const Mark = "grace::"

// Apply returns the image of the structure under Grace.
func (Operator) Apply(s Structure) Structure {
	out := s.Clone()
	out.Name = "Grace(" + s.Name + ")"
	for object, fiber := range out.ObjectMapping {
		marked := make([]Element, 0, len(fiber))
		for _, e := range fiber {
			marked = append(marked, Element(Mark)+e)
		}
		out.ObjectMapping[object] = normalizeFiber(marked)
	}
	return out
}

// Isomorphic runs the documented partial isomorphism check between two
// presheaf structures: same kind, same representing object (when any),
// same object-mapping key set, and both functorial. Element labels are
// deliberately not compared; relabelling is exactly the kind of
// isomorphism this check must tolerate.
func Isomorphic(a, b Structure) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.RepresentingObject != b.RepresentingObject {
		return false
	}
	aKeys, bKeys := a.ObjectKeys(), b.ObjectKeys()
	if len(aKeys) != len(bKeys) {
		return false
	}
	for i := range aKeys {
		if aKeys[i] != bKeys[i] {
			return false
		}
	}
	return a.VerifyFunctoriality() && b.VerifyFunctoriality()
}

package presheaf

import (
	"sort"
	"strings"

	ferrors "github.com/ktynski/firm/errors"
)

// Kind classifies a presheaf structure.
type Kind int

const (
	KindUnspecified Kind = iota
	KindRepresentable
	KindNonRepresentable
	KindSubobjectClassifier
	KindPowerObject
	KindExponential
)

func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "Unspecified"
	case KindRepresentable:
		return "Representable"
	case KindNonRepresentable:
		return "NonRepresentable"
	case KindSubobjectClassifier:
		return "SubobjectClassifier"
	case KindPowerObject:
		return "PowerObject"
	case KindExponential:
		return "Exponential"
	default:
		return "Unknown"
	}
}

// identityKeyPrefix is the naming convention for identity morphism
// keys: "id_<objectID>" registers the identity on that object's fiber.
const identityKeyPrefix = "id_"

// Structure is a presheaf-like structure: object-indexed fibers plus
// morphism-indexed transforms on their elements.
//
// Structures are value objects. New deep-copies its inputs and callers
// must treat a built Structure as immutable; registries store and hand
// out independent clones.
type Structure struct {
	Name               string
	Kind               Kind
	ObjectMapping      map[string][]Element
	MorphismMapping    map[string]Transform
	RepresentingObject string
}

// New validates and builds a presheaf structure.
// Fibers are deduplicated and kept sorted so structural comparisons
// are order-insensitive.
func New(name string, kind Kind, objects map[string][]Element, morphisms map[string]Transform, representing string) (Structure, error) {
	if strings.TrimSpace(name) == "" {
		return Structure{}, ferrors.New(ferrors.CodeValidationEmptyName, "presheaf name is required")
	}
	if kind == KindRepresentable && representing == "" {
		return Structure{}, ferrors.WithMetadata(
			ferrors.CodeValidationMissingRepresenting,
			"representable presheaf must declare a representing object",
			map[string]string{"Name": name},
		)
	}
	s := Structure{
		Name:               name,
		Kind:               kind,
		ObjectMapping:      cloneFibers(objects),
		MorphismMapping:    cloneTransforms(morphisms),
		RepresentingObject: representing,
	}
	return s, nil
}

// ObjectID returns the stable identifier structures are keyed by.
func (s Structure) ObjectID() string {
	return s.Name
}

// ObjectKeys returns the sorted object-mapping keys.
func (s Structure) ObjectKeys() []string {
	keys := make([]string, 0, len(s.ObjectMapping))
	for key := range s.ObjectMapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Fiber returns a copy of the fiber over the given object.
// A missing object yields an empty fiber, never an error.
func (s Structure) Fiber(object string) []Element {
	fiber, ok := s.ObjectMapping[object]
	if !ok {
		return nil
	}
	out := make([]Element, len(fiber))
	copy(out, fiber)
	return out
}

// Clone returns an independent deep copy of the structure.
func (s Structure) Clone() Structure {
	return Structure{
		Name:               s.Name,
		Kind:               s.Kind,
		ObjectMapping:      cloneFibers(s.ObjectMapping),
		MorphismMapping:    cloneTransforms(s.MorphismMapping),
		RepresentingObject: s.RepresentingObject,
	}
}

// Transformed returns a copy of the structure with every fiber mapped
// element-wise through the transform. Morphism transforms are carried
// over unchanged.
func (s Structure) Transformed(t Transform) Structure {
	out := s.Clone()
	for object, fiber := range out.ObjectMapping {
		mapped := make([]Element, 0, len(fiber))
		for _, e := range fiber {
			mapped = append(mapped, t.Apply(e))
		}
		out.ObjectMapping[object] = normalizeFiber(mapped)
	}
	return out
}

// VerifyFunctoriality runs the documented partial functoriality check:
//
//   - every morphism key following the "id_<object>" convention must
//     register a transform acting as the identity on that object's
//     fiber;
//   - composing the first two non-identity transforms (in sorted key
//     order) must remain symbolically distinguishable from either
//     component, ruling out degenerate morphism tables. With fewer
//     than two non-identity keys this clause passes vacuously.
//
// This is a proxy for functoriality, not a proof of it.
func (s Structure) VerifyFunctoriality() bool {
	nonIdentity := make([]string, 0, len(s.MorphismMapping))
	for key, transform := range s.MorphismMapping {
		object, ok := identityTarget(key)
		if !ok {
			nonIdentity = append(nonIdentity, key)
			continue
		}
		if !transform.IsIdentityOn(s.ObjectMapping[object]) {
			return false
		}
	}

	if len(nonIdentity) < 2 {
		return true
	}
	sort.Strings(nonIdentity)
	f := s.MorphismMapping[nonIdentity[0]]
	g := s.MorphismMapping[nonIdentity[1]]
	composite := f.Compose(g)
	return composite.DistinguishableFrom(f) && composite.DistinguishableFrom(g)
}

// StructurallyEqual reports whether two structures have identical
// names, kinds, representing objects, fibers and morphism traces.
// Transform functions are compared symbolically, not by pointer.
func StructurallyEqual(a, b Structure) bool {
	if a.Name != b.Name || a.Kind != b.Kind || a.RepresentingObject != b.RepresentingObject {
		return false
	}
	aKeys, bKeys := a.ObjectKeys(), b.ObjectKeys()
	if len(aKeys) != len(bKeys) {
		return false
	}
	for i, key := range aKeys {
		if key != bKeys[i] {
			return false
		}
		af, bf := a.ObjectMapping[key], b.ObjectMapping[key]
		if len(af) != len(bf) {
			return false
		}
		for j := range af {
			if af[j] != bf[j] {
				return false
			}
		}
	}
	if len(a.MorphismMapping) != len(b.MorphismMapping) {
		return false
	}
	for key, at := range a.MorphismMapping {
		bt, ok := b.MorphismMapping[key]
		if !ok || at.DistinguishableFrom(bt) {
			return false
		}
	}
	return true
}

// identityTarget extracts the object id from an identity-convention
// morphism key. The bare key "id" tags a global identity with no
// specific fiber.
func identityTarget(key string) (string, bool) {
	if key == IdentityName {
		return "", true
	}
	if strings.HasPrefix(key, identityKeyPrefix) {
		return strings.TrimPrefix(key, identityKeyPrefix), true
	}
	return "", false
}

func cloneFibers(fibers map[string][]Element) map[string][]Element {
	out := make(map[string][]Element, len(fibers))
	for object, fiber := range fibers {
		copied := make([]Element, len(fiber))
		copy(copied, fiber)
		out[object] = normalizeFiber(copied)
	}
	return out
}

func cloneTransforms(transforms map[string]Transform) map[string]Transform {
	out := make(map[string]Transform, len(transforms))
	for key, transform := range transforms {
		out[key] = transform
	}
	return out
}

// normalizeFiber sorts and deduplicates a fiber so it behaves as a set.
func normalizeFiber(fiber []Element) []Element {
	sort.Slice(fiber, func(i, j int) bool { return fiber[i] < fiber[j] })
	out := fiber[:0]
	var last Element
	for i, e := range fiber {
		if i > 0 && e == last {
			continue
		}
		out = append(out, e)
		last = e
	}
	return out
}

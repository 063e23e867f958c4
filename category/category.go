// Package category defines the minimal categorical contract shared by
// the presheaf and fixed-point registries.
//
// The contract is intentionally small: objects, morphisms, composition
// and identity. Law checking (functoriality, equivariance) lives with
// the concrete implementers; this package only fixes the shape.
package category

// Object is anything that can serve as an object of a category.
type Object interface {
	// ObjectID returns the stable identifier objects are keyed by.
	ObjectID() string
}

// Morphism is a directed arrow between two objects, identified by
// their stable identifiers.
type Morphism interface {
	SourceID() string
	TargetID() string
}

// Category exposes the categorical operations over concrete object and
// morphism types. Compose(f, g) denotes f∘g: g is applied first, so the
// composite runs from g's source to f's target.
type Category[O Object, M Morphism] interface {
	// Objects returns a snapshot of the registered objects.
	Objects() []O

	// Morphisms returns a snapshot of the registered morphisms.
	Morphisms() []M

	// Compose returns f∘g. It fails when g's target is not f's source.
	Compose(f, g M) (M, error)

	// Identity returns the identity morphism on obj.
	Identity(obj O) M

	// IsComposable reports whether f∘g is defined.
	IsComposable(f, g M) bool
}

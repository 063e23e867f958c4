package presheaf

import "strings"

// Element is a single member of a presheaf fiber.
type Element string

// IdentityName is the symbolic name of the identity transform.
const IdentityName = "id"

// Transform is a named action on fiber elements.
//
// Composition is symbolic as well as functional: composing transforms
// concatenates their traces, so a composite stays distinguishable from
// its components even when the underlying functions agree pointwise.
// The trace is flattened on composition, which makes trace equality
// associative.
type Transform struct {
	Name string

	apply func(Element) Element
	trace []string
}

// NewTransform creates a primitive named transform.
func NewTransform(name string, apply func(Element) Element) Transform {
	return Transform{Name: name, apply: apply, trace: []string{name}}
}

// IdentityTransform returns the transform fixing every element.
func IdentityTransform() Transform {
	return Transform{
		Name:  IdentityName,
		apply: func(e Element) Element { return e },
		trace: []string{IdentityName},
	}
}

// Apply runs the transform on one element.
func (t Transform) Apply(e Element) Element {
	if t.apply == nil {
		return e
	}
	return t.apply(e)
}

// Compose returns t∘u: u is applied first, then t.
func (t Transform) Compose(u Transform) Transform {
	trace := make([]string, 0, len(u.trace)+len(t.trace))
	trace = append(trace, u.trace...)
	trace = append(trace, t.trace...)
	return Transform{
		Name: strings.Join(trace, "∘"),
		apply: func(e Element) Element {
			return t.Apply(u.Apply(e))
		},
		trace: trace,
	}
}

// Trace returns a copy of the symbolic composition trace.
func (t Transform) Trace() []string {
	if len(t.trace) == 0 {
		return []string{t.Name}
	}
	out := make([]string, len(t.trace))
	copy(out, t.trace)
	return out
}

// DistinguishableFrom reports whether the two transforms differ
// symbolically, i.e. their composition traces are not identical.
func (t Transform) DistinguishableFrom(u Transform) bool {
	tt, ut := t.Trace(), u.Trace()
	if len(tt) != len(ut) {
		return true
	}
	for i := range tt {
		if tt[i] != ut[i] {
			return true
		}
	}
	return false
}

// IsIdentityOn reports whether the transform fixes every element of
// the fiber.
func (t Transform) IsIdentityOn(fiber []Element) bool {
	for _, e := range fiber {
		if t.Apply(e) != e {
			return false
		}
	}
	return true
}

package presheaf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ktynski/firm/category"
	ferrors "github.com/ktynski/firm/errors"
	"github.com/ktynski/firm/telemetry"
	"github.com/ktynski/firm/universe"
)

// Natural is a morphism of the presheaf category: a named natural
// transformation between two registered presheaves. The component
// transform acts on fiber elements; naturality is not re-proved here.
type Natural struct {
	Name      string
	Source    string
	Target    string
	Component Transform

	identity bool
}

// SourceID returns the source presheaf name.
func (n Natural) SourceID() string { return n.Source }

// TargetID returns the target presheaf name.
func (n Natural) TargetID() string { return n.Target }

// IsIdentity reports whether the natural transformation is an identity.
func (n Natural) IsIdentity() bool { return n.identity }

// Category is the registry of presheaf structures and natural
// transformations over one universe hierarchy.
//
// All mutation goes through the Add* and construct operations, each of
// which validates before inserting; a failed call leaves the registry
// exactly as it was.
type Category struct {
	hierarchy *universe.Hierarchy
	emitter   *telemetry.Emitter

	presheaves map[string]Structure
	naturals   map[string]Natural
	embeddings map[string]Embedded
	toposBuilt bool
}

var _ category.Category[Structure, Natural] = (*Category)(nil)

// CategoryOption configures a presheaf category.
type CategoryOption func(*Category)

// WithEmitter wires a telemetry emitter recording law-check outcomes.
func WithEmitter(e *telemetry.Emitter) CategoryOption {
	return func(c *Category) { c.emitter = e }
}

// NewCategory creates an empty presheaf category over the hierarchy.
func NewCategory(h *universe.Hierarchy, opts ...CategoryOption) *Category {
	c := &Category{
		hierarchy:  h,
		presheaves: make(map[string]Structure),
		naturals:   make(map[string]Natural),
		embeddings: make(map[string]Embedded),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Objects returns a snapshot of the registered presheaves sorted by name.
func (c *Category) Objects() []Structure {
	names := make([]string, 0, len(c.presheaves))
	for name := range c.presheaves {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Structure, 0, len(names))
	for _, name := range names {
		out = append(out, c.presheaves[name].Clone())
	}
	return out
}

// Morphisms returns a snapshot of the registered natural
// transformations sorted by name.
func (c *Category) Morphisms() []Natural {
	names := make([]string, 0, len(c.naturals))
	for name := range c.naturals {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Natural, 0, len(names))
	for _, name := range names {
		out = append(out, c.naturals[name])
	}
	return out
}

// Presheaf returns the registered structure with the given name.
// A miss returns ok=false, never an error.
func (c *Category) Presheaf(name string) (Structure, bool) {
	s, ok := c.presheaves[name]
	if !ok {
		return Structure{}, false
	}
	return s.Clone(), true
}

// AddPresheaf validates and upserts a presheaf keyed by name.
// It rejects with a VALIDATION error unless the structure passes the
// functoriality check.
func (c *Category) AddPresheaf(s Structure) error {
	if strings.TrimSpace(s.Name) == "" {
		return ferrors.New(ferrors.CodeValidationEmptyName, "presheaf name is required")
	}
	if !s.VerifyFunctoriality() {
		err := ferrors.WithMetadata(
			ferrors.CodeValidationFunctoriality,
			fmt.Sprintf("presheaf %s failed functoriality", s.Name),
			map[string]string{"Name": s.Name},
		)
		c.emitCheck("functoriality", s.Name, err)
		return err
	}
	c.presheaves[s.Name] = s.Clone()
	c.emitCheck("functoriality", s.Name, nil)
	return nil
}

// AddNatural validates and registers a natural transformation.
// Both endpoints must already be registered presheaves.
func (c *Category) AddNatural(n Natural) error {
	if strings.TrimSpace(n.Name) == "" {
		return ferrors.New(ferrors.CodeValidationEmptyName, "natural transformation name is required")
	}
	for _, endpoint := range []string{n.Source, n.Target} {
		if _, ok := c.presheaves[endpoint]; !ok {
			err := ferrors.WithMetadata(
				ferrors.CodeValidationEndpointUnregistered,
				fmt.Sprintf("endpoint %s is not a registered presheaf", endpoint),
				map[string]string{"Endpoint": endpoint},
			)
			c.emitCheck("endpoints", n.Name, err)
			return err
		}
	}
	c.naturals[n.Name] = n
	c.emitCheck("endpoints", n.Name, nil)
	return nil
}

// Identity returns the identity natural transformation on a presheaf.
func (c *Category) Identity(obj Structure) Natural {
	return Natural{
		Name:      identityKeyPrefix + obj.Name,
		Source:    obj.Name,
		Target:    obj.Name,
		Component: IdentityTransform(),
		identity:  true,
	}
}

// IsComposable reports whether f∘g is defined.
func (c *Category) IsComposable(f, g Natural) bool {
	return g.Target == f.Source
}

// Compose returns f∘g. Identities are absorbed, so composing with an
// identity returns the other morphism unchanged.
func (c *Category) Compose(f, g Natural) (Natural, error) {
	if !c.IsComposable(f, g) {
		return Natural{}, composabilityError(f.Name, f.Source, g.Name, g.Target)
	}
	if g.identity {
		return f, nil
	}
	if f.identity {
		return g, nil
	}
	return Natural{
		Name:      f.Name + "∘" + g.Name,
		Source:    g.Source,
		Target:    f.Target,
		Component: f.Component.Compose(g.Component),
	}, nil
}

// YonedaEmbed builds or returns the cached representable presheaf
// approximating Hom(-, objectID) and registers it. Repeated calls with
// the same id return structurally equal embeddings.
//
// The self-reference foundation must be enabled first: the embedding
// is only paradox-safe over a verified stratification.
func (c *Category) YonedaEmbed(objectID string) (Embedded, error) {
	if strings.TrimSpace(objectID) == "" {
		return Embedded{}, ferrors.New(ferrors.CodeValidationEmptyName, "object id is required")
	}
	if !c.hierarchy.SelfReferenceEnabled() {
		return Embedded{}, ferrors.New(
			ferrors.CodeValidationSelfReferenceRequired,
			"self-reference foundation is not enabled",
		)
	}
	if cached, ok := c.embeddings[objectID]; ok {
		return cached, nil
	}

	hom := buildHomFunctor(objectID, c.hierarchy)
	if err := c.AddPresheaf(hom); err != nil {
		return Embedded{}, err
	}
	embedded := Embedded{Object: objectID, HomFunctor: hom}
	c.embeddings[objectID] = embedded
	return embedded, nil
}

// Embeddings returns the number of registered Yoneda embeddings.
func (c *Category) Embeddings() int {
	return len(c.embeddings)
}

// VerifyYonedaFullFaithfulness re-derives the four full-faithfulness
// flags from the registered embeddings:
//
//   - faithfulness: distinct embedded objects have structurally
//     distinguishable hom functors;
//   - fullness: every hom functor is registered, representable, and
//     represents its own object;
//   - naturality: stepwise restriction of a top-level arrow lands in
//     the expected lower fiber, i.e. the embedding respects
//     composition of level inclusions;
//   - isomorphism: rebuilding each embedding reproduces the cached hom
//     functor structurally.
func (c *Category) VerifyYonedaFullFaithfulness() YonedaReport {
	if len(c.embeddings) == 0 {
		return YonedaReport{}
	}

	ids := make([]string, 0, len(c.embeddings))
	for id := range c.embeddings {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	report := YonedaReport{
		Faithfulness: true,
		Fullness:     true,
		Naturality:   true,
		Isomorphism:  true,
	}

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a := c.embeddings[ids[i]].HomFunctor
			b := c.embeddings[ids[j]].HomFunctor
			if !distinguishableFibers(a, b) {
				report.Faithfulness = false
			}
		}
	}

	for _, id := range ids {
		embedded := c.embeddings[id]
		registered, ok := c.presheaves[embedded.HomFunctor.Name]
		if !ok || registered.Kind != KindRepresentable || registered.RepresentingObject != id {
			report.Fullness = false
		}
		if !c.restrictionsCompose(embedded.HomFunctor) {
			report.Naturality = false
		}
		if !StructurallyEqual(buildHomFunctor(id, c.hierarchy), embedded.HomFunctor) {
			report.Isomorphism = false
		}
	}
	return report
}

// restrictionsCompose checks that applying successive restriction
// transforms to each level's arrow lands in the next fiber down.
func (c *Category) restrictionsCompose(hom Structure) bool {
	for n := c.hierarchy.Len() - 1; n >= 1; n-- {
		transform, ok := hom.MorphismMapping[restrictionKey(n, n-1)]
		if !ok {
			return false
		}
		upper := hom.Fiber(levelObjectID(n))
		lower := hom.Fiber(levelObjectID(n - 1))
		for _, e := range upper {
			if !containsElement(lower, transform.Apply(e)) {
				return false
			}
		}
	}
	return true
}

// distinguishableFibers reports whether two structures differ in at
// least one fiber's contents.
func distinguishableFibers(a, b Structure) bool {
	aKeys, bKeys := a.ObjectKeys(), b.ObjectKeys()
	if len(aKeys) != len(bKeys) {
		return true
	}
	for i, key := range aKeys {
		if key != bKeys[i] {
			return true
		}
		af, bf := a.ObjectMapping[key], b.ObjectMapping[key]
		if len(af) != len(bf) {
			return true
		}
		for j := range af {
			if af[j] != bf[j] {
				return true
			}
		}
	}
	return false
}

func containsElement(fiber []Element, e Element) bool {
	for _, candidate := range fiber {
		if candidate == e {
			return true
		}
	}
	return false
}

// emitCheck records a law-check outcome; err nil means the check passed.
func (c *Category) emitCheck(check, subject string, err error) {
	evt := telemetry.CheckEvent{
		Component: "presheaf",
		Check:     check,
		Subject:   subject,
		Outcome:   telemetry.OutcomePass,
	}
	if err != nil {
		evt.Outcome = telemetry.OutcomeFail
		evt.Code = string(ferrors.GetCode(err))
	}
	c.emitter.Emit(evt)
}

// composabilityError builds the endpoint-mismatch error shared by the
// concrete categories.
func composabilityError(outer, outerSource, inner, innerTarget string) error {
	return ferrors.WithMetadata(
		ferrors.CodeComposabilityEndpointMismatch,
		fmt.Sprintf("cannot compose: %s targets %s but %s starts at %s", inner, innerTarget, outer, outerSource),
		map[string]string{
			"Outer":       outer,
			"OuterSource": outerSource,
			"Inner":       inner,
			"InnerTarget": innerTarget,
		},
	)
}

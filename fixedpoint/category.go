package fixedpoint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ktynski/firm/category"
	ferrors "github.com/ktynski/firm/errors"
	"github.com/ktynski/firm/presheaf"
	"github.com/ktynski/firm/telemetry"
)

// Category is the registry of Grace-stable structures and the
// Grace-equivariant morphisms between them.
//
// All mutation goes through AddFixedPoint and AddMorphism, each of
// which validates before inserting; a failed call leaves the
// registries exactly as they were.
type Category struct {
	emitter *telemetry.Emitter
	verify  func(Structure) bool

	objects   map[string]Structure
	morphisms map[string]Morphism
}

var _ category.Category[Structure, Morphism] = (*Category)(nil)

// Option configures a fixed-point category.
type Option func(*Category)

// WithEmitter wires a telemetry emitter recording law-check outcomes.
func WithEmitter(e *telemetry.Emitter) Option {
	return func(c *Category) { c.emitter = e }
}

// WithVerifier overrides the fixed-point law check. This is a seam for
// tests that need to force admission or rejection; production callers
// use the default Grace-stability verification.
func WithVerifier(verify func(Structure) bool) Option {
	return func(c *Category) { c.verify = verify }
}

// NewCategory creates an empty fixed-point category.
func NewCategory(opts ...Option) *Category {
	c := &Category{
		verify:    Structure.VerifyFixedPointProperty,
		objects:   make(map[string]Structure),
		morphisms: make(map[string]Morphism),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Objects returns a snapshot of the admitted fixed points sorted by name.
func (c *Category) Objects() []Structure {
	names := make([]string, 0, len(c.objects))
	for name := range c.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Structure, 0, len(names))
	for _, name := range names {
		out = append(out, c.objects[name])
	}
	return out
}

// Morphisms returns a snapshot of the registered morphisms sorted by name.
func (c *Category) Morphisms() []Morphism {
	names := make([]string, 0, len(c.morphisms))
	for name := range c.morphisms {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Morphism, 0, len(names))
	for _, name := range names {
		out = append(out, c.morphisms[name])
	}
	return out
}

// FixedPoint returns the admitted structure with the given name.
// A miss returns ok=false, never an error.
func (c *Category) FixedPoint(name string) (Structure, bool) {
	s, ok := c.objects[name]
	return s, ok
}

// AddFixedPoint runs the fixed-point law on the candidate and admits
// it keyed by name. Rejection is a VALIDATION error and leaves the
// registry untouched.
func (c *Category) AddFixedPoint(s Structure) error {
	if strings.TrimSpace(s.Name) == "" {
		return ferrors.New(ferrors.CodeValidationEmptyName, "fixed point name is required")
	}
	if !c.verify(s) {
		err := ferrors.WithMetadata(
			ferrors.CodeValidationFixedPointProperty,
			fmt.Sprintf("structure %s is not Grace-stable", s.Name),
			map[string]string{"Name": s.Name},
		)
		c.emitCheck("fixed_point_property", s.Name, err)
		return err
	}
	c.objects[s.Name] = s
	c.emitCheck("fixed_point_property", s.Name, nil)
	return nil
}

// AddMorphism runs the Grace-equivariance law on the morphism and
// registers it keyed by name. Both endpoints must already be admitted
// fixed points.
func (c *Category) AddMorphism(m Morphism) error {
	if strings.TrimSpace(m.Name) == "" {
		return ferrors.New(ferrors.CodeValidationEmptyName, "morphism name is required")
	}
	if err := c.verifyGraceEquivariance(m); err != nil {
		c.emitCheck("grace_equivariance", m.Name, err)
		return err
	}
	c.morphisms[m.Name] = m
	c.emitCheck("grace_equivariance", m.Name, nil)
	return nil
}

// verifyGraceEquivariance implements the documented partial
// equivariance check:
//
//   - both endpoints must be admitted and still satisfy the
//     fixed-point law;
//   - a transform payload must commute with Grace up to presheaf
//     isomorphism, compared on fiber key sets and cardinalities;
//   - a token payload must be compatible with the target's physical
//     system (the system tag must mention the token).
func (c *Category) verifyGraceEquivariance(m Morphism) error {
	source, ok := c.objects[m.Source]
	if !ok {
		return endpointUnregistered(m.Source)
	}
	target, ok := c.objects[m.Target]
	if !ok {
		return endpointUnregistered(m.Target)
	}
	if !c.verify(source) || !c.verify(target) {
		return ferrors.WithMetadata(
			ferrors.CodeValidationGraceEquivariance,
			fmt.Sprintf("morphism %s has an endpoint that is no longer Grace-stable", m.Name),
			map[string]string{"Name": m.Name},
		)
	}

	switch payload := m.Payload.(type) {
	case TransformPayload:
		if !commutesWithGrace(source.Presheaf, payload.Transform) {
			return ferrors.WithMetadata(
				ferrors.CodeValidationGraceEquivariance,
				fmt.Sprintf("morphism %s does not commute with Grace", m.Name),
				map[string]string{"Name": m.Name},
			)
		}
	case TokenPayload:
		if !strings.Contains(target.PhysicalSystem, payload.Token) {
			return ferrors.WithMetadata(
				ferrors.CodeValidationTokenIncompatible,
				fmt.Sprintf("token %s is not compatible with physical system %s", payload.Token, target.PhysicalSystem),
				map[string]string{"Token": payload.Token, "PhysicalSystem": target.PhysicalSystem},
			)
		}
	default:
		return ferrors.WithMetadata(
			ferrors.CodeValidationMissingPayload,
			fmt.Sprintf("morphism %s has no payload", m.Name),
			map[string]string{"Name": m.Name},
		)
	}
	return nil
}

// commutesWithGrace compares applying the transform before and after
// Grace. The comparison is the documented partial proxy: both paths
// must agree on fiber key sets and per-fiber cardinality and remain
// isomorphic presheaves.
func commutesWithGrace(s presheaf.Structure, t presheaf.Transform) bool {
	applyThenGrace := presheaf.Grace.Apply(s.Transformed(t))
	graceThenApply := presheaf.Grace.Apply(s).Transformed(t)

	keys := applyThenGrace.ObjectKeys()
	otherKeys := graceThenApply.ObjectKeys()
	if len(keys) != len(otherKeys) {
		return false
	}
	for i, key := range keys {
		if key != otherKeys[i] {
			return false
		}
		if len(applyThenGrace.Fiber(key)) != len(graceThenApply.Fiber(key)) {
			return false
		}
	}
	return presheaf.Isomorphic(applyThenGrace, graceThenApply)
}

// Identity returns the identity morphism on a fixed point.
func (c *Category) Identity(obj Structure) Morphism {
	return Morphism{
		Name:     "id_" + obj.Name,
		Source:   obj.Name,
		Target:   obj.Name,
		identity: true,
	}
}

// IsComposable reports whether f∘g is defined.
func (c *Category) IsComposable(f, g Morphism) bool {
	return g.Target == f.Source
}

// Compose returns f∘g with source g.Source and target f.Target.
// Identities are absorbed and composite names are flattened, so
// composition is associative up to Morphism.Equal.
func (c *Category) Compose(f, g Morphism) (Morphism, error) {
	if !c.IsComposable(f, g) {
		return Morphism{}, ferrors.WithMetadata(
			ferrors.CodeComposabilityEndpointMismatch,
			fmt.Sprintf("cannot compose: %s targets %s but %s starts at %s", g.Name, g.Target, f.Name, f.Source),
			map[string]string{
				"Outer":       f.Name,
				"OuterSource": f.Source,
				"Inner":       g.Name,
				"InnerTarget": g.Target,
			},
		)
	}
	if g.identity {
		return f, nil
	}
	if f.identity {
		return g, nil
	}
	return Morphism{
		Name:             f.Name + "∘" + g.Name,
		Source:           g.Source,
		Target:           f.Target,
		Payload:          composePayloads(f.Payload, g.Payload),
		ConservationLaws: unionLaws(g.ConservationLaws, f.ConservationLaws),
	}, nil
}

func endpointUnregistered(name string) error {
	return ferrors.WithMetadata(
		ferrors.CodeValidationEndpointUnregistered,
		fmt.Sprintf("endpoint %s is not an admitted fixed point", name),
		map[string]string{"Endpoint": name},
	)
}

// emitCheck records a law-check outcome; err nil means the check passed.
func (c *Category) emitCheck(check, subject string, err error) {
	evt := telemetry.CheckEvent{
		Component: "fixedpoint",
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

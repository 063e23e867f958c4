package presheaf

import (
	"fmt"

	ferrors "github.com/ktynski/firm/errors"
)

// ClassifierName is the registry name of the subobject classifier.
const ClassifierName = "Omega"

// ToposReport carries the minimal topos-capability flags. Each flag is
// derived from the registry's actual contents; the checks are partial
// capability probes, not categorical proofs.
type ToposReport struct {
	FiniteLimits        bool
	FiniteColimits      bool
	Exponentials        bool
	SubobjectClassifier bool
	PowerObjects        bool
	InternalLogic       bool
}

// Complete reports whether every capability flag is set.
func (r ToposReport) Complete() bool {
	return r.FiniteLimits && r.FiniteColimits && r.Exponentials &&
		r.SubobjectClassifier && r.PowerObjects && r.InternalLogic
}

// ConstructToposStructure probes the registry for minimal topos
// capabilities and, as a side effect, registers the subobject
// classifier presheaf Omega. Repeated calls are idempotent: Omega is
// upserted under its fixed name.
func (c *Category) ConstructToposStructure() (ToposReport, error) {
	if !c.hierarchy.SelfReferenceEnabled() {
		return ToposReport{}, ferrors.New(
			ferrors.CodeValidationSelfReferenceRequired,
			"self-reference foundation is not enabled",
		)
	}

	if err := c.AddPresheaf(buildClassifier(c.hierarchy.Len())); err != nil {
		return ToposReport{}, err
	}

	stratified := c.hierarchy.VerifyStratification()
	report := ToposReport{
		FiniteLimits:        stratified && len(c.presheaves) > 0,
		FiniteColimits:      stratified && len(c.presheaves) > 0,
		Exponentials:        c.fibersInhabited(),
		SubobjectClassifier: c.hasKind(KindSubobjectClassifier),
	}
	report.PowerObjects = report.SubobjectClassifier && report.Exponentials
	report.InternalLogic = report.SubobjectClassifier && report.Exponentials

	if report.Complete() {
		c.toposBuilt = true
	}
	return report, nil
}

// PrepareForGraceOperator reports whether the category is ready for
// the Grace operator: topos structure constructed, at least one Yoneda
// embedding registered, and the hierarchy still stratified.
func (c *Category) PrepareForGraceOperator() bool {
	return c.toposBuilt && len(c.embeddings) >= 1 && c.hierarchy.VerifyStratification()
}

// fibersInhabited reports whether every registered presheaf has at
// least one object with a non-empty fiber, the condition under which
// the fiber-wise exponential of any two registered presheaves is
// itself non-degenerate.
func (c *Category) fibersInhabited() bool {
	if len(c.presheaves) == 0 {
		return false
	}
	for _, s := range c.presheaves {
		if len(s.ObjectMapping) == 0 {
			return false
		}
		inhabited := false
		for _, fiber := range s.ObjectMapping {
			if len(fiber) > 0 {
				inhabited = true
				break
			}
		}
		if !inhabited {
			return false
		}
	}
	return true
}

// hasKind reports whether some registered presheaf has the given kind.
func (c *Category) hasKind(kind Kind) bool {
	for _, s := range c.presheaves {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// buildClassifier constructs the two-valued subobject classifier over
// the given number of levels: every fiber holds the truth values, with
// an identity and a negation transform per level.
func buildClassifier(levels int) Structure {
	if levels < 1 {
		levels = 1
	}
	fibers := make(map[string][]Element, levels)
	transforms := make(map[string]Transform, 2*levels)
	for n := 0; n < levels; n++ {
		level := levelObjectID(n)
		fibers[level] = []Element{"true", "false"}
		transforms[identityKeyPrefix+level] = IdentityTransform()
		transforms[negationKey(n)] = negation(n)
	}

	s, err := New(ClassifierName, KindSubobjectClassifier, fibers, transforms, "")
	if err != nil {
		// Unreachable: the classifier name is fixed and non-empty.
		panic(err)
	}
	return s
}

func negationKey(n int) string {
	return fmt.Sprintf("negate_%d", n)
}

// negation swaps the two truth values.
func negation(n int) Transform {
	return NewTransform(negationKey(n), func(e Element) Element {
		switch e {
		case "true":
			return "false"
		case "false":
			return "true"
		default:
			return e
		}
	})
}

package fixedpoint

import (
	"fmt"
	"strings"

	"github.com/ktynski/firm/phi"
	"github.com/ktynski/firm/presheaf"
)

// Canonical fixed point names.
const (
	NameU1        = "U1_EM"
	NameSU2       = "SU2_Weak"
	NameSU3       = "SU3_Strong"
	NameSpacetime = "Spacetime"
)

// Physical system tags.
const (
	SystemElectromagnetic = "electromagnetic"
	SystemWeak            = "weak_nuclear"
	SystemStrong          = "strong_nuclear"
	SystemSpacetime       = "spacetime"
)

// seedLevels is the number of base objects under each canonical
// presheaf's fibers.
const seedLevels = 3

// ExampleObject returns the canonical fixed point for one of the four
// seed labels. The constructor is deterministic: the same label always
// yields a structurally identical result. Unknown labels return
// ok=false.
func ExampleObject(label string) (Structure, bool) {
	switch label {
	case NameU1:
		return gaugeObject(NameU1, SystemElectromagnetic, "U(1)", electromagneticCoupling), true
	case NameSU2:
		return gaugeObject(NameSU2, SystemWeak, "SU(2)", weakCoupling), true
	case NameSU3:
		return gaugeObject(NameSU3, SystemStrong, "SU(3)", strongCoupling), true
	case NameSpacetime:
		return spacetimeObject(), true
	default:
		return Structure{}, false
	}
}

// ExampleMorphism returns the canonical Grace-equivariant morphism
// between two seeded fixed points. The payload is the target's
// coupling token; unknown labels return ok=false.
func ExampleMorphism(source, target string) (Morphism, bool) {
	src, ok := ExampleObject(source)
	if !ok {
		return Morphism{}, false
	}
	tgt, ok := ExampleObject(target)
	if !ok {
		return Morphism{}, false
	}
	return Morphism{
		Name:             src.Name + "_to_" + tgt.Name,
		Source:           src.Name,
		Target:           tgt.Name,
		Payload:          TokenPayload{Token: tgt.PhysicalSystem},
		ConservationLaws: conservationLaws(tgt.PhysicalSystem),
	}, true
}

// Seed admits the four canonical fixed points and the canonical chain
// of morphisms U1 -> SU2 -> SU3 -> Spacetime.
func (c *Category) Seed() error {
	for _, label := range []string{NameU1, NameSU2, NameSU3, NameSpacetime} {
		obj, _ := ExampleObject(label)
		if err := c.AddFixedPoint(obj); err != nil {
			return err
		}
	}
	chain := [][2]string{
		{NameU1, NameSU2},
		{NameSU2, NameSU3},
		{NameSU3, NameSpacetime},
	}
	for _, pair := range chain {
		m, _ := ExampleMorphism(pair[0], pair[1])
		if err := c.AddMorphism(m); err != nil {
			return err
		}
	}
	return nil
}

// gaugeObject builds a gauge fixed point: one negative-real eigenvalue
// of magnitude 1/φ, which classifies attracting.
func gaugeObject(name, system, group string, coupling float64) Structure {
	return Structure{
		Name:            name,
		Presheaf:        canonicalPresheaf(name),
		Stability:       StabilityAttracting,
		PhysicalSystem:  system,
		Eigenvalues:     []complex128{complex(-phi.Inv, 0)},
		ConvergenceRate: phi.Inv,
		DerivedConstants: map[string]float64{
			system + "_coupling": coupling,
		},
		SymmetryGroup: group,
	}
}

// spacetimeObject builds the spacetime fixed point: three negative-real
// eigenvalues (spatial directions) and one conjugate-imaginary pair
// (the temporal direction). Every magnitude stays below one, so the
// spectrum classifies attracting.
func spacetimeObject() Structure {
	temporal := phi.Pow(-2)
	return Structure{
		Name:           NameSpacetime,
		Presheaf:       canonicalPresheaf(NameSpacetime),
		Stability:      StabilityAttracting,
		PhysicalSystem: SystemSpacetime,
		Eigenvalues: []complex128{
			complex(-phi.Inv, 0),
			complex(-phi.Inv, 0),
			complex(-phi.Inv, 0),
			complex(0, temporal),
			complex(0, -temporal),
		},
		ConvergenceRate: phi.Inv,
		DerivedConstants: map[string]float64{
			"spacetime_signature": phi.Pow(-1),
		},
		SymmetryGroup: "SO(3,1)",
	}
}

// canonicalPresheaf builds the functorial, Grace-stable presheaf
// underlying every canonical fixed point.
func canonicalPresheaf(name string) presheaf.Structure {
	fibers := make(map[string][]presheaf.Element, seedLevels)
	transforms := make(map[string]presheaf.Transform, 2*seedLevels)
	for n := 0; n < seedLevels; n++ {
		level := fmt.Sprintf("level_%d", n)
		fibers[level] = []presheaf.Element{sectionElement(name, n)}
		transforms["id_"+level] = presheaf.IdentityTransform()
	}
	for n := 1; n < seedLevels; n++ {
		transforms[fmt.Sprintf("restrict_%d_%d", n, n-1)] = sectionRestriction(n, n-1)
	}

	s, err := presheaf.New(name+"_presheaf", presheaf.KindNonRepresentable, fibers, transforms, "")
	if err != nil {
		// Unreachable: seed names are fixed and non-empty.
		panic(err)
	}
	return s
}

func sectionElement(name string, n int) presheaf.Element {
	return presheaf.Element(fmt.Sprintf("%s_section_%d", name, n))
}

// sectionRestriction rewrites the section index, restricting sections
// from level from down to level to.
func sectionRestriction(from, to int) presheaf.Transform {
	source := fmt.Sprintf("_section_%d", from)
	target := fmt.Sprintf("_section_%d", to)
	return presheaf.NewTransform(fmt.Sprintf("restrict_%d_%d", from, to), func(e presheaf.Element) presheaf.Element {
		return presheaf.Element(strings.Replace(string(e), source, target, 1))
	})
}

// conservationLaws names the laws transported along a morphism into
// the given physical system.
func conservationLaws(system string) []string {
	switch system {
	case SystemElectromagnetic:
		return []string{"charge_conservation"}
	case SystemWeak:
		return []string{"weak_isospin_conservation"}
	case SystemStrong:
		return []string{"color_charge_conservation"}
	case SystemSpacetime:
		return []string{"energy_momentum_conservation"}
	default:
		return nil
	}
}

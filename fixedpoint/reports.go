package fixedpoint

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/ktynski/firm/phi"
)

// Coupling strengths are φ-power expressions, one per interaction tag.
// The three gauge couplings are deliberately distinct formulas; no
// claim is made about reproducing measured constants.
var (
	electromagneticCoupling = phi.Pow(-6)
	weakCoupling            = phi.Pow(-9)
	strongCoupling          = phi.Pow(-3)
)

// Dimensionality is the spacetime signature derived from the spacetime
// fixed point's eigenvalue spectrum.
type Dimensionality struct {
	Spatial  int
	Temporal int
}

// DeriveFundamentalConstants folds the admitted fixed points and
// registered morphisms into named constants. Each fixed point
// contributes its declared derived constants; each token payload
// contributes the φ-power coupling for its interaction tag. The fold
// is pure over the registries, so repeated calls with no intervening
// mutation return identical maps.
func (c *Category) DeriveFundamentalConstants() map[string]float64 {
	out := make(map[string]float64)
	for _, s := range c.Objects() {
		for name, value := range s.DerivedConstants {
			out[name] = value
		}
	}
	for _, m := range c.Morphisms() {
		token, ok := m.Payload.(TokenPayload)
		if !ok {
			continue
		}
		name, value, ok := couplingForToken(token.Token)
		if !ok {
			continue
		}
		out[name] = value
	}
	return out
}

// couplingForToken resolves an interaction token to its constant.
// Each tag resolves to a distinct formula.
func couplingForToken(token string) (string, float64, bool) {
	switch {
	case strings.Contains(token, SystemElectromagnetic):
		return "electromagnetic_coupling", electromagneticCoupling, true
	case strings.Contains(token, "weak"):
		return "weak_nuclear_coupling", weakCoupling, true
	case strings.Contains(token, "strong"):
		return "strong_nuclear_coupling", strongCoupling, true
	default:
		return "", 0, false
	}
}

// EnumerateGaugeGroups returns one entry per admitted fixed point
// carrying both a physical system and a symmetry group.
func (c *Category) EnumerateGaugeGroups() map[string]string {
	out := make(map[string]string)
	for _, s := range c.Objects() {
		if s.PhysicalSystem == "" || s.SymmetryGroup == "" {
			continue
		}
		out[s.PhysicalSystem] = s.SymmetryGroup
	}
	return out
}

// SpacetimeDimensionality derives the signature from the spacetime
// fixed point: spatial dimensions count the negative-real eigenvalues,
// and one temporal dimension is present when at least two eigenvalues
// have nonzero imaginary part. The second return value is false when
// no spacetime fixed point is admitted.
func (c *Category) SpacetimeDimensionality() (Dimensionality, bool) {
	spacetime, ok := c.systemObject(SystemSpacetime)
	if !ok {
		return Dimensionality{}, false
	}

	spatial, imaginary := 0, 0
	for _, ev := range spacetime.Eigenvalues {
		if imag(ev) != 0 {
			imaginary++
			continue
		}
		if real(ev) < 0 {
			spatial++
		}
	}
	temporal := 0
	if imaginary >= 2 {
		temporal = 1
	}
	return Dimensionality{Spatial: spatial, Temporal: temporal}, true
}

// VerifyPhysicalRealizability re-runs the realizability conditions on
// every admitted fixed point: the fixed-point law still holds, the
// recomputed stability classification matches the declared one (a
// Physical declaration, and spacetime in particular, must classify
// attracting), and the structure is tied to observation through a
// physical system or at least one derivable constant.
func (c *Category) VerifyPhysicalRealizability() map[string]bool {
	out := make(map[string]bool, len(c.objects))
	for _, s := range c.Objects() {
		out[s.Name] = c.verify(s) &&
			classificationMatches(s) &&
			(s.PhysicalSystem != "" || len(s.DerivedConstants) > 0)
	}
	return out
}

func classificationMatches(s Structure) bool {
	computed := s.Classify()
	if s.PhysicalSystem == SystemSpacetime && computed != StabilityAttracting {
		return false
	}
	if s.Stability == StabilityPhysical {
		return computed == StabilityAttracting
	}
	return computed == s.Stability
}

// summaryTemplate renders the physical reality report. The gauge table
// is sorted by system so output is deterministic.
var summaryTemplate = template.Must(template.New("summary").Parse(
	`Physical reality summary
========================
Spacetime dimensionality: {{if .HasSpacetime}}({{.Spatial}}, {{.Temporal}}){{else}}not derivable{{end}}
Gauge groups:
{{- range .Gauge}}
  {{.System}} -> {{.Group}}
{{- end}}
Fixed points admitted: {{.FixedPoints}}
Morphisms registered: {{.Morphisms}}
Realizable fixed points: {{.Realizable}} of {{.FixedPoints}}
`))

type summaryGaugeRow struct {
	System string
	Group  string
}

type summaryData struct {
	HasSpacetime bool
	Spatial      int
	Temporal     int
	Gauge        []summaryGaugeRow
	FixedPoints  int
	Morphisms    int
	Realizable   int
}

// PhysicalRealitySummary renders a non-empty human-readable report
// covering dimensionality and the gauge-group table. The string is
// informational; nothing downstream parses it.
func (c *Category) PhysicalRealitySummary() string {
	data := summaryData{
		FixedPoints: len(c.objects),
		Morphisms:   len(c.morphisms),
	}
	if dim, ok := c.SpacetimeDimensionality(); ok {
		data.HasSpacetime = true
		data.Spatial = dim.Spatial
		data.Temporal = dim.Temporal
	}
	groups := c.EnumerateGaugeGroups()
	systems := make([]string, 0, len(groups))
	for system := range groups {
		systems = append(systems, system)
	}
	sort.Strings(systems)
	for _, system := range systems {
		data.Gauge = append(data.Gauge, summaryGaugeRow{System: system, Group: groups[system]})
	}
	for _, ok := range c.VerifyPhysicalRealizability() {
		if ok {
			data.Realizable++
		}
	}

	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, data); err != nil {
		return fmt.Sprintf("physical reality summary unavailable: %v", err)
	}
	return buf.String()
}

// systemObject returns the first admitted fixed point declaring the
// given physical system.
func (c *Category) systemObject(system string) (Structure, bool) {
	for _, s := range c.Objects() {
		if s.PhysicalSystem == system {
			return s, true
		}
	}
	return Structure{}, false
}

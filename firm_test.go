package firm

import (
	"testing"

	"github.com/ktynski/firm/fixedpoint"
	"github.com/ktynski/firm/presheaf"
	"github.com/ktynski/firm/telemetry"
)

func TestNewWiresRegistries(t *testing.T) {
	f := New()

	if f.Hierarchy == nil || f.Presheaves == nil || f.FixedPoints == nil || f.Telemetry == nil {
		t.Fatalf("New() = %+v, want all capabilities wired", f)
	}
	if got := f.Hierarchy.Len(); got != DefaultMaxLevel+1 {
		t.Errorf("Hierarchy.Len() = %d, want %d", got, DefaultMaxLevel+1)
	}
}

func TestWithMaxLevel(t *testing.T) {
	f := New(WithMaxLevel(7))

	if got := f.Hierarchy.Len(); got != 8 {
		t.Errorf("Hierarchy.Len() = %d, want 8", got)
	}
}

func TestBootstrapRunsFullChain(t *testing.T) {
	store := telemetry.NewMemory()
	f := New(WithTelemetryStore(store))

	if err := f.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	if !f.Hierarchy.SelfReferenceEnabled() {
		t.Error("SelfReferenceEnabled() = false after Bootstrap")
	}
	if _, ok := f.Presheaves.Presheaf(presheaf.ClassifierName); !ok {
		t.Error("classifier presheaf not registered after Bootstrap")
	}
	if got := f.Presheaves.Embeddings(); got != f.Hierarchy.Len() {
		t.Errorf("Embeddings() = %d, want %d", got, f.Hierarchy.Len())
	}
	if !f.Presheaves.PrepareForGraceOperator() {
		t.Error("PrepareForGraceOperator() = false after Bootstrap")
	}
	if _, ok := f.FixedPoints.FixedPoint(fixedpoint.NameSpacetime); !ok {
		t.Error("spacetime fixed point not seeded after Bootstrap")
	}
	if len(store.Events()) == 0 {
		t.Error("no law-check events recorded during Bootstrap")
	}

	report := f.Presheaves.VerifyYonedaFullFaithfulness()
	if !report.Faithfulness || !report.Fullness || !report.Naturality || !report.Isomorphism {
		t.Errorf("VerifyYonedaFullFaithfulness() = %+v, want all flags true", report)
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	f := New()

	if err := f.Bootstrap(); err != nil {
		t.Fatalf("first Bootstrap() error = %v", err)
	}
	objects := len(f.FixedPoints.Objects())
	embeddings := f.Presheaves.Embeddings()

	if err := f.Bootstrap(); err != nil {
		t.Fatalf("second Bootstrap() error = %v", err)
	}
	if got := len(f.FixedPoints.Objects()); got != objects {
		t.Errorf("Objects() after second Bootstrap = %d, want %d", got, objects)
	}
	if got := f.Presheaves.Embeddings(); got != embeddings {
		t.Errorf("Embeddings() after second Bootstrap = %d, want %d", got, embeddings)
	}

	dim, ok := f.FixedPoints.SpacetimeDimensionality()
	if !ok {
		t.Fatal("SpacetimeDimensionality() ok = false after Bootstrap")
	}
	if dim.Spatial != 3 || dim.Temporal != 1 {
		t.Errorf("SpacetimeDimensionality() = (%d, %d), want (3, 1)", dim.Spatial, dim.Temporal)
	}
}

func TestBootstrapDerivedReports(t *testing.T) {
	f := New()
	if err := f.Bootstrap(); err != nil {
		t.Fatalf("Bootstrap() error = %v", err)
	}

	constants := f.FixedPoints.DeriveFundamentalConstants()
	if len(constants) == 0 {
		t.Fatal("DeriveFundamentalConstants() = empty map")
	}
	groups := f.FixedPoints.EnumerateGaugeGroups()
	if groups[fixedpoint.SystemElectromagnetic] != "U(1)" {
		t.Errorf("EnumerateGaugeGroups()[electromagnetic] = %q, want U(1)", groups[fixedpoint.SystemElectromagnetic])
	}
	for name, ok := range f.FixedPoints.VerifyPhysicalRealizability() {
		if !ok {
			t.Errorf("VerifyPhysicalRealizability()[%s] = false, want true", name)
		}
	}
	if summary := f.FixedPoints.PhysicalRealitySummary(); summary == "" {
		t.Error("PhysicalRealitySummary() = empty string")
	}
}

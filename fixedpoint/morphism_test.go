package fixedpoint

import (
	"testing"

	"github.com/ktynski/firm/presheaf"
)

func TestMorphismEqual(t *testing.T) {
	base := Morphism{
		Name:             "f",
		Source:           "A",
		Target:           "B",
		Payload:          TokenPayload{Token: "x"},
		ConservationLaws: []string{"charge_conservation"},
	}

	tests := []struct {
		name  string
		other Morphism
		want  bool
	}{
		{"identical", base, true},
		{"different name", Morphism{Name: "g", Source: "A", Target: "B", Payload: TokenPayload{Token: "x"}, ConservationLaws: []string{"charge_conservation"}}, false},
		{"different target", Morphism{Name: "f", Source: "A", Target: "C", Payload: TokenPayload{Token: "x"}, ConservationLaws: []string{"charge_conservation"}}, false},
		{"different token", Morphism{Name: "f", Source: "A", Target: "B", Payload: TokenPayload{Token: "y"}, ConservationLaws: []string{"charge_conservation"}}, false},
		{"missing laws", Morphism{Name: "f", Source: "A", Target: "B", Payload: TokenPayload{Token: "x"}}, false},
		{"missing payload", Morphism{Name: "f", Source: "A", Target: "B", ConservationLaws: []string{"charge_conservation"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMorphismEqualComparesTransformTraces(t *testing.T) {
	double := func(e presheaf.Element) presheaf.Element { return e + e }
	a := Morphism{Name: "f", Source: "A", Target: "B", Payload: TransformPayload{Transform: presheaf.NewTransform("double", double)}}
	b := Morphism{Name: "f", Source: "A", Target: "B", Payload: TransformPayload{Transform: presheaf.NewTransform("double", double)}}
	c := Morphism{Name: "f", Source: "A", Target: "B", Payload: TransformPayload{Transform: presheaf.NewTransform("triple", double)}}

	if !a.Equal(b) {
		t.Error("Equal() = false for matching traces")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for differing traces with identical functions")
	}
}

func TestComposePayloadsMixedCollapses(t *testing.T) {
	token := TokenPayload{Token: "x"}
	transform := TransformPayload{Transform: presheaf.IdentityTransform()}

	if got := composePayloads(token, transform); got != nil {
		t.Errorf("composePayloads(token, transform) = %v, want nil", got)
	}
	if got := composePayloads(transform, nil); got != nil {
		t.Errorf("composePayloads(transform, nil) = %v, want nil", got)
	}
}

func TestUnionLaws(t *testing.T) {
	got := unionLaws([]string{"a", "b"}, []string{"b", "c", "a"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("unionLaws() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unionLaws()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if unionLaws(nil, nil) != nil {
		t.Error("unionLaws(nil, nil) != nil")
	}
}

package presheaf

import "testing"

func TestGraceApplyPreservesShape(t *testing.T) {
	s := twoLevelStructure(t, "F")
	image := Grace.Apply(s)

	if image.Kind != s.Kind {
		t.Errorf("Apply() kind = %v, want %v", image.Kind, s.Kind)
	}
	if image.RepresentingObject != s.RepresentingObject {
		t.Errorf("Apply() representing object = %q, want %q", image.RepresentingObject, s.RepresentingObject)
	}
	gotKeys, wantKeys := image.ObjectKeys(), s.ObjectKeys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("Apply() keys = %v, want %v", gotKeys, wantKeys)
	}
	for _, e := range image.Fiber("level_0") {
		if len(e) < len(Mark) || string(e[:len(Mark)]) != Mark {
			t.Errorf("Apply() element %q missing grace mark", e)
		}
	}
}

func TestIsomorphic(t *testing.T) {
	s := twoLevelStructure(t, "F")

	tests := []struct {
		name  string
		other func() Structure
		want  bool
	}{
		{"grace image is isomorphic", func() Structure { return Grace.Apply(s) }, true},
		{"relabelled clone is isomorphic", func() Structure {
			return s.Transformed(NewTransform("relabel", func(e Element) Element { return "r:" + e }))
		}, true},
		{"kind mismatch is not isomorphic", func() Structure {
			other := s.Clone()
			other.Kind = KindExponential
			return other
		}, false},
		{"missing fiber key is not isomorphic", func() Structure {
			other := s.Clone()
			delete(other.ObjectMapping, "level_2")
			return other
		}, false},
		{"broken functoriality is not isomorphic", func() Structure {
			other := s.Clone()
			other.MorphismMapping["id_level_0"] = NewTransform("shifted", func(e Element) Element { return e + "!" })
			return other
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Isomorphic(s, tt.other()); got != tt.want {
				t.Errorf("Isomorphic() = %v, want %v", got, tt.want)
			}
		})
	}
}

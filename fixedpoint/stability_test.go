package fixedpoint

import "testing"

func TestClassifyStability(t *testing.T) {
	tests := []struct {
		name        string
		eigenvalues []complex128
		want        Stability
	}{
		{"empty spectrum", nil, StabilityUnspecified},
		{"all inside unit circle", []complex128{complex(0.5, 0), complex(0, 0.3)}, StabilityAttracting},
		{"all outside unit circle", []complex128{complex(-2, 0), complex(0, 1.5)}, StabilityRepelling},
		{"all on unit circle", []complex128{complex(1, 0), complex(0, -1)}, StabilityNeutral},
		{"mixed magnitudes", []complex128{complex(0.5, 0), complex(2, 0)}, StabilitySaddle},
		{"unit circle within tolerance", []complex128{complex(1+1e-12, 0)}, StabilityNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyStability(tt.eigenvalues); got != tt.want {
				t.Errorf("ClassifyStability(%v) = %v, want %v", tt.eigenvalues, got, tt.want)
			}
		})
	}
}

func TestStabilityString(t *testing.T) {
	tests := []struct {
		stability Stability
		want      string
	}{
		{StabilityUnspecified, "Unspecified"},
		{StabilityAttracting, "Attracting"},
		{StabilityRepelling, "Repelling"},
		{StabilityNeutral, "Neutral"},
		{StabilitySaddle, "Saddle"},
		{StabilityPhysical, "Physical"},
		{Stability(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.stability.String(); got != tt.want {
			t.Errorf("Stability(%d).String() = %q, want %q", int(tt.stability), got, tt.want)
		}
	}
}

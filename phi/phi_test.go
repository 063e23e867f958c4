package phi

import "testing"

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{"zeroth power", 0, 1},
		{"first power", 1, Phi},
		{"negative power is reciprocal", -1, Inv},
		{"square satisfies phi identity", 2, Phi + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pow(tt.n)
			if !Equal(got, tt.want) {
				t.Errorf("Pow(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a    float64
		b    float64
		want bool
	}{
		{"identical values", 1.5, 1.5, true},
		{"within tolerance", 1.5, 1.5 + Epsilon/2, true},
		{"outside tolerance", 1.5, 1.5001, false},
		{"phi times inverse is one", Phi * Inv, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Equal(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

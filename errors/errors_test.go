package errors

import (
	stderrors "errors"
	"testing"
)

func TestErrorInterface(t *testing.T) {
	err := New(CodeValidationEmptyName, "name required")
	if err.Error() != "name required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "name required")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(CodeInvalidStateStratification, "stratification broken", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is(wrapped, cause) = false, want true")
	}
	if got := stderrors.Unwrap(err); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	a := New(CodeValidationEmptyName, "one message")
	b := New(CodeValidationEmptyName, "another message")
	c := New(CodeValidationMissingPayload, "one message")

	if !stderrors.Is(a, b) {
		t.Error("errors.Is() = false for same code, want true")
	}
	if stderrors.Is(a, c) {
		t.Error("errors.Is() = true for different codes, want false")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"foundation error", New(CodeValidationFunctoriality, "x"), CodeValidationFunctoriality},
		{"wrapped foundation error", Wrap(CodeComposabilityEndpointMismatch, "x", New(CodeValidationEmptyName, "y")), CodeComposabilityEndpointMismatch},
		{"plain error", stderrors.New("plain"), CodeUnknown},
		{"nil", nil, CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetMetadata(t *testing.T) {
	err := WithMetadata(CodeValidationTokenIncompatible, "x", map[string]string{"Token": "weak"})
	if got := GetMetadata(err)["Token"]; got != "weak" {
		t.Errorf("GetMetadata()[Token] = %q, want %q", got, "weak")
	}
	if GetMetadata(stderrors.New("plain")) != nil {
		t.Error("GetMetadata(plain) != nil")
	}
}

func TestCodeFamilies(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		validation    bool
		composability bool
		invalidState  bool
	}{
		{"validation", New(CodeValidationGraceEquivariance, "x"), true, false, false},
		{"composability", New(CodeComposabilityEndpointMismatch, "x"), false, true, false},
		{"invalid state", New(CodeInvalidStateStratification, "x"), false, false, true},
		{"plain error in no family", stderrors.New("plain"), false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidation(tt.err); got != tt.validation {
				t.Errorf("IsValidation() = %v, want %v", got, tt.validation)
			}
			if got := IsComposability(tt.err); got != tt.composability {
				t.Errorf("IsComposability() = %v, want %v", got, tt.composability)
			}
			if got := IsInvalidState(tt.err); got != tt.invalidState {
				t.Errorf("IsInvalidState() = %v, want %v", got, tt.invalidState)
			}
		})
	}
}

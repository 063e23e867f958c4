// Package errors provides structured error handling for the categorical
// foundation.
//
// Every failure surfaced by the foundation carries a machine-readable
// code. Codes are grouped into three families that callers branch on:
//
//   - VALIDATION_*: a law check rejected a structure at registration
//   - COMPOSABILITY_*: morphism endpoints do not line up for composition
//   - INVALID_STATE_*: a structural invariant that should be unreachable
//     under correct construction was found broken
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Validation errors
	CodeValidationEmptyName             Code = "VALIDATION_EMPTY_NAME"
	CodeValidationMissingRepresenting   Code = "VALIDATION_MISSING_REPRESENTING_OBJECT"
	CodeValidationFunctoriality         Code = "VALIDATION_FUNCTORIALITY_FAILED"
	CodeValidationFixedPointProperty    Code = "VALIDATION_FIXED_POINT_PROPERTY_FAILED"
	CodeValidationGraceEquivariance     Code = "VALIDATION_GRACE_EQUIVARIANCE_FAILED"
	CodeValidationTokenIncompatible     Code = "VALIDATION_TOKEN_INCOMPATIBLE"
	CodeValidationMissingPayload        Code = "VALIDATION_MISSING_PAYLOAD"
	CodeValidationEndpointUnregistered  Code = "VALIDATION_ENDPOINT_UNREGISTERED"
	CodeValidationSelfReferenceRequired Code = "VALIDATION_SELF_REFERENCE_REQUIRED"

	// Composability errors
	CodeComposabilityEndpointMismatch Code = "COMPOSABILITY_ENDPOINT_MISMATCH"

	// Invalid-state errors
	CodeInvalidStateStratification  Code = "INVALID_STATE_STRATIFICATION_BROKEN"
	CodeInvalidStateToposIncomplete Code = "INVALID_STATE_TOPOS_INCOMPLETE"
	CodeInvalidStateGraceUnready    Code = "INVALID_STATE_GRACE_UNREADY"
)

const (
	validationPrefix    = "VALIDATION_"
	composabilityPrefix = "COMPOSABILITY_"
	invalidStatePrefix  = "INVALID_STATE_"
)

package i18n

// Error codes must match the codes defined in errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeValidationEmptyName             = "VALIDATION_EMPTY_NAME"
	CodeValidationMissingRepresenting   = "VALIDATION_MISSING_REPRESENTING_OBJECT"
	CodeValidationFunctoriality         = "VALIDATION_FUNCTORIALITY_FAILED"
	CodeValidationFixedPointProperty    = "VALIDATION_FIXED_POINT_PROPERTY_FAILED"
	CodeValidationGraceEquivariance     = "VALIDATION_GRACE_EQUIVARIANCE_FAILED"
	CodeValidationTokenIncompatible     = "VALIDATION_TOKEN_INCOMPATIBLE"
	CodeValidationMissingPayload        = "VALIDATION_MISSING_PAYLOAD"
	CodeValidationEndpointUnregistered  = "VALIDATION_ENDPOINT_UNREGISTERED"
	CodeValidationSelfReferenceRequired = "VALIDATION_SELF_REFERENCE_REQUIRED"
	CodeComposabilityEndpointMismatch   = "COMPOSABILITY_ENDPOINT_MISMATCH"
	CodeInvalidStateStratification      = "INVALID_STATE_STRATIFICATION_BROKEN"
	CodeInvalidStateToposIncomplete     = "INVALID_STATE_TOPOS_INCOMPLETE"
	CodeInvalidStateGraceUnready        = "INVALID_STATE_GRACE_UNREADY"
)

var enUSCatalog = NewCatalog("en-US", map[Code]string{
	CodeValidationEmptyName:             "Structure name cannot be empty",
	CodeValidationMissingRepresenting:   "Representable presheaf {{.Name}} must declare a representing object",
	CodeValidationFunctoriality:         "Presheaf {{.Name}} failed the functoriality check",
	CodeValidationFixedPointProperty:    "Structure {{.Name}} is not Grace-stable",
	CodeValidationGraceEquivariance:     "Morphism {{.Name}} does not commute with the Grace operator",
	CodeValidationTokenIncompatible:     "Token {{.Token}} is not compatible with physical system {{.PhysicalSystem}}",
	CodeValidationMissingPayload:        "Morphism {{.Name}} has no payload",
	CodeValidationEndpointUnregistered:  "Endpoint {{.Endpoint}} is not a registered structure",
	CodeValidationSelfReferenceRequired: "Self-reference foundation has not been enabled",
	CodeComposabilityEndpointMismatch:   "Cannot compose: {{.Inner}} targets {{.InnerTarget}} but {{.Outer}} starts at {{.OuterSource}}",
	CodeInvalidStateStratification:      "Universe stratification is broken at level {{.Level}}",
	CodeInvalidStateToposIncomplete:     "Topos structure is incomplete",
	CodeInvalidStateGraceUnready:        "Presheaf category is not ready for the Grace operator",
})

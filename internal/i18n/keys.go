// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Response details
	KeyDetailNotFound    = "detail.not_found"
	KeyDetailInternal    = "detail.internal"
	KeyDetailParseError  = "detail.parse_error"
	KeyDetailRateLimited = "detail.rate_limited"

	// Field validation
	KeyValidationRequired      = "validation.required"
	KeyValidationBlank         = "validation.blank"
	KeyValidationInvalidChoice = "validation.invalid_choice"
	KeyValidationMaxLength     = "validation.max_length"
	KeyValidationMinValue      = "validation.min_value"
	KeyValidationMaxValue      = "validation.max_value"
	KeyValidationInvalidURL    = "validation.invalid_url"
	KeyValidationInvalidEmail  = "validation.invalid_email"
	KeyValidationUnique        = "validation.unique"
	KeyValidationInvalidPK     = "validation.invalid_pk"
	KeyValidationInvalid       = "validation.invalid"
)

// internal/utils/validator.go
package utils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bahiapp/bahi-backend/internal/i18n"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the wire name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct checks a bound request struct and returns field-keyed
// errors, or nil when the struct is valid.
func ValidateStruct(lang string, s interface{}) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(FieldErrors)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors.Add("non_field_errors", i18n.T(lang, i18n.KeyValidationInvalid))
		return fieldErrors
	}

	for _, e := range validationErrs {
		fieldErrors.Add(e.Field(), validationMessage(lang, e))
	}
	return fieldErrors
}

func validationMessage(lang string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return i18n.T(lang, i18n.KeyValidationRequired)
	case "oneof":
		return i18n.T(lang, i18n.KeyValidationInvalidChoice, e.Value())
	case "max":
		if e.Kind() == reflect.String {
			return i18n.T(lang, i18n.KeyValidationMaxLength, e.Param())
		}
		return i18n.T(lang, i18n.KeyValidationMaxValue, e.Param())
	case "min", "gte":
		return i18n.T(lang, i18n.KeyValidationMinValue, e.Param())
	case "lte":
		return i18n.T(lang, i18n.KeyValidationMaxValue, e.Param())
	case "url":
		return i18n.T(lang, i18n.KeyValidationInvalidURL)
	case "email":
		return i18n.T(lang, i18n.KeyValidationInvalidEmail)
	default:
		return i18n.T(lang, i18n.KeyValidationInvalid)
	}
}

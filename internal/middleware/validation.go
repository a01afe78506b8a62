package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingErrorMessage turns a gin binding error into a user-facing message.
// gin surfaces struct-tag failures as validator.ValidationErrors; anything
// else is a malformed body.
func BindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return formatValidationError(verrs[0])
	}
	return "Invalid request body"
}

// BindingErrorField returns the offending field for a binding error, if any.
func BindingErrorField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

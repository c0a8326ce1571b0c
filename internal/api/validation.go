package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationError is one field-level failure extracted from a binding error.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

var validate = validator.New()

// ValidateStruct validates a struct using its validate tags.
func ValidateStruct(s interface{}) []ValidationError {
	var result []ValidationError

	err := validate.Struct(s)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fe := range fieldErrors {
				result = append(result, ValidationError{
					Field:   fe.Field(),
					Tag:     fe.Tag(),
					Message: fieldErrorMessage(fe),
				})
			}
		}
	}

	return result
}

// BindErrorMessage turns a gin binding error into a short user-facing
// message. Non-validator errors (malformed JSON and the like) pass through
// as-is.
func BindErrorMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return fieldErrorMessage(fieldErrors[0])
	}
	return err.Error()
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

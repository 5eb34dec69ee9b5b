package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/ecomshop/shop-api/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return nil, false
	}

	// only the first failing field is reported
	fieldErr := validationErrors[0]

	resp := sharedError.ValidationFailed
	resp.Error = fmt.Sprintf("Invalid %s", fieldName(fieldErr))
	resp.Message = getErrorMessage(fieldErr)
	return &resp, true
}

func fieldName(fe validator.FieldError) string {
	// Field() is the json name once RegisterAll has run
	if name := fe.Field(); name != "" {
		return name
	}
	return fe.StructField()
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	name := fieldName(fe)

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required.", name)
	case "email":
		return "Email format is invalid."
	case "min":
		return fmt.Sprintf("%s must be at least %s.", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s.", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s.", name, fe.Param())
	default:
		return fmt.Sprintf("'%s' is invalid.", name)
	}
}

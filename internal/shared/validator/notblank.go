package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateNotBlank rejects strings made only of whitespace.
// Non-string fields always pass.
func ValidateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

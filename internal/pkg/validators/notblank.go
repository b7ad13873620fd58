package validators

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NotBlankTag is the struct tag under which NotBlank gets registered
const NotBlankTag = "notblank"

// NotBlank reports whether a string field contains anything besides whitespace.
// Non-string fields are considered valid.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// New returns a validator with the project's custom validations registered.
func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation(NotBlankTag, NotBlank); err != nil {
		return nil, fmt.Errorf("failed to register custom validator: %w", err)
	}
	return validate, nil
}

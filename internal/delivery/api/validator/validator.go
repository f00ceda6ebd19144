// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports JSON field names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate checks the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return &ValidationError{fields: fieldErrs}
		}

		return errors.WithStack(err)
	}

	return nil
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages(), "; ")
}

// Messages returns one readable message per failed field.
func (e *ValidationError) Messages() []string {
	messages := make([]string, 0, len(e.fields))
	for _, field := range e.fields {
		messages = append(messages, fieldMessage(field))
	}

	return messages
}

func fieldMessage(field validator.FieldError) string {
	switch field.Tag() {
	case "required":
		return field.Field() + " is required"
	case "email":
		return field.Field() + " must be a valid email"
	case "uuid":
		return field.Field() + " must be a valid UUID"
	case "gt":
		return field.Field() + " must be greater than " + field.Param()
	case "gte":
		return field.Field() + " must be at least " + field.Param()
	case "oneof":
		return field.Field() + " must be one of: " + field.Param()
	default:
		return field.Field() + " is invalid"
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// maxBcryptBytes is bcrypt's input limit; longer secrets cannot be hashed.
const maxBcryptBytes = 72

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ValidationErrors is returned by Validate when a request fails its struct tags.
type ValidationErrors struct {
	Fields []FieldError
}

func (e *ValidationErrors) Error() string {
	return "request validation failed"
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator installed on the echo instance.
// Fields are reported by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
	// max counts runes; bcrypt counts bytes.
	_ = validate.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxBcryptBytes
	})

	return &CustomValidator{validate: validate}
}

// Validate runs struct tag validation on i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	out := &ValidationErrors{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		// Drop the request struct name: "LoginRequest.user.id" -> "user.id".
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		out.Fields = append(out.Fields, FieldError{Field: field, Rule: fe.Tag()})
	}

	return out
}

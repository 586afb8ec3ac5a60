// Package validator wraps go-playground/validator with a package-level
// instance and a uniform error format.
//
// Field names in errors prefer the `envconfig` tag when present, so
// configuration failures point at the environment variable the operator has
// to fix rather than at the Go field.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is always the first error of the joined chain returned
// by Validate when a rule is violated.
var ErrValidationFailed = errors.New("struct validation failed")

var validator *gvalidator.Validate

// errStringFormat describes a single rule violation.
//
// Example: "'CONTRACT_ADDRESS': value '0x' does not meet the requirements for the 'eth_addr' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(fieldName)
}

// fieldName reports the envconfig name of a field, falling back to the Go name.
func fieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("envconfig"), ",")
	if name == "" || name == "-" {
		return f.Name
	}

	return name
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` tags.
//
//	if err := validator.Validate(cfg); errors.Is(err, validator.ErrValidationFailed) {
//	    // report the violations
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// ValidateVar checks a single value against tag, reporting violations under
// name.
func ValidateVar(name string, value any, tag string) error {
	err := validator.Var(value, tag)

	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, name, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

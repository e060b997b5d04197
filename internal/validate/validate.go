package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hogwarts-cloud/sizer/internal/models"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type FieldError struct {
	Field  string
	Value  any
	Reason string
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: field %q %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: field %q %s, got %v", ErrInvalidInput, e.Field, e.Reason, e.Value)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

func NewFieldError(field string, value any, reason string) *FieldError {
	return &FieldError{Field: field, Value: value, Reason: reason}
}

type Validator struct {
	validator *validator.Validate
}

func (v *Validator) Run(requirements models.Requirements) error {
	return v.run(requirements)
}

func (v *Validator) RunBaseline(baseline models.Baseline) error {
	return v.run(baseline)
}

func (v *Validator) run(s any) error {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("failed to validate: %w", err)
	}

	first := validationErrors[0]

	return NewFieldError(fieldPath(first.Namespace()), first.Value(), reason(first))
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	return &Validator{validator: v}
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("failed the %q check", fe.Tag())
	}
}

package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one failed rule on one field
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// Validator wraps the go-playground validator and reports fields by their
// json names.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Struct validates s and returns the failed fields in declaration order. A
// non-nil error is only returned when s cannot be validated at all.
func (v *Validator) Struct(s interface{}) ([]FieldError, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		fields = append(fields, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: formatMessage(e),
		})
	}
	return fields, nil
}

// formatMessage creates a human-readable validation error message
func formatMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

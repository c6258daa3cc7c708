package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Level  string `json:"level,omitempty" validate:"oneof=low high"`
	Secret string `json:"-" validate:"required"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	fields, err := v.Struct(sample{Level: "mid"})
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, FieldError{Field: "name", Tag: "required", Message: "name is required"}, fields[0])
	assert.Equal(t, FieldError{Field: "level", Tag: "oneof", Message: "level must be one of: low high"}, fields[1])
	assert.Equal(t, "Secret", fields[2].Field)

	fields, err = v.Struct(sample{Name: "a", Level: "low", Secret: "s"})
	assert.NoError(t, err)
	assert.Empty(t, fields)
}

func TestValidator_StructRejectsNonStruct(t *testing.T) {
	_, err := New().Struct(42)

	assert.Error(t, err)
}

package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"notblank"`
	Kind   string `json:"kind" validate:"oneof=a b"`
	Hidden string `json:"-"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Name: "   ", Kind: "c"})
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))

	m := errs.ToMap()
	assert.Equal(t, "name is required", m["name"])
	assert.Equal(t, "kind must be one of: a, b", m["kind"])
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Kind: "a"}))
}

func TestValidationErrors_ToMapKeepsFirst(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "first"},
		{Field: "date", Message: "second"},
	}
	assert.Equal(t, map[string]string{"date": "first"}, errs.ToMap())
	assert.Contains(t, errs.Error(), "date: first")
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

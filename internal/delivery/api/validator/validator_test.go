package validator

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	ID int64 `json:"id" validate:"required"`
}

type request struct {
	User     nested `json:"user"`
	Password string `json:"password" validate:"required,max=8"`
	Internal string `json:"-" validate:"required"`
}

func TestCustomValidator_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&request{Password: "much-too-long"})
	require.Error(t, err)

	var validationErr *ValidationErrors
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "user.id", Rule: "required"},
		{Field: "password", Rule: "max"},
		{Field: "Internal", Rule: "required"},
	}, validationErr.Fields)
}

func TestCustomValidator_Valid(t *testing.T) {
	err := New().Validate(&request{User: nested{ID: 1}, Password: "ok", Internal: "x"})
	assert.NoError(t, err)
}

func TestCustomValidator_BcryptMaxCountsBytes(t *testing.T) {
	type secret struct {
		Value string `json:"value" validate:"bcryptmax"`
	}

	assert.NoError(t, New().Validate(&secret{Value: strings.Repeat("é", 36)}))

	err := New().Validate(&secret{Value: strings.Repeat("é", 37)})
	var validationErr *ValidationErrors
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []FieldError{{Field: "value", Rule: "bcryptmax"}}, validationErr.Fields)
}

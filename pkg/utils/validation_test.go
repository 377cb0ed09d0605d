package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Quantity int    `validate:"required,min=1,max=20"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "a@b.com", Quantity: 3})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "not-an-email", Quantity: 25})

	require.Len(t, errs, 2)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be at most 20", errs["Quantity"])
}

func TestValidateStructRequired(t *testing.T) {
	errs := ValidateStruct(sampleRequest{})

	require.Len(t, errs, 2)
	assert.Equal(t, "This field is required", errs["Email"])
}

func TestFormatValidationErrors(t *testing.T) {
	formatted := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", formatted)
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(25, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

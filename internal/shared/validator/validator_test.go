package validator_test

import (
	"testing"

	"github.com/ecomshop/shop-api/internal/shared/validator"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name" binding:"notblank"`
	Price *int   `json:"price" binding:"required,gte=0"`
}

func TestRegisterAll_Idempotent(t *testing.T) {
	require.NoError(t, validator.RegisterAll())
	require.NoError(t, validator.RegisterAll())
}

func TestToErrorResponse_UsesJSONFieldName(t *testing.T) {
	require.NoError(t, validator.RegisterAll())
	price := 3

	err := binding.Validator.ValidateStruct(&sample{Name: "   ", Price: &price})
	require.Error(t, err)

	resp, ok := validator.ToErrorResponse(err)
	require.True(t, ok)
	assert.Equal(t, 400, resp.Status)
	assert.Equal(t, "ERROR-001", resp.Code)
	assert.Equal(t, "Invalid name", resp.Error)
	assert.Equal(t, "name is required.", resp.Message)
}

func TestToErrorResponse_Range(t *testing.T) {
	require.NoError(t, validator.RegisterAll())
	price := -1

	err := binding.Validator.ValidateStruct(&sample{Name: "Lamp", Price: &price})
	resp, ok := validator.ToErrorResponse(err)
	require.True(t, ok)
	assert.Equal(t, "price must be greater than or equal to 0.", resp.Message)
}

func TestToErrorResponse_NotValidationError(t *testing.T) {
	_, ok := validator.ToErrorResponse(assert.AnError)
	assert.False(t, ok)
}

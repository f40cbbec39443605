package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecatalog/internal/core/apperror"
	"storecatalog/internal/core/types"
)

func TestNewProduct_DefaultCategory(t *testing.T) {
	p := NewProduct("Молоко", types.MustMoney("89.90"), "")
	assert.Equal(t, DefaultCategory, p.Category)

	p = NewProduct("Молоко", types.MustMoney("89.90"), "dairy")
	assert.Equal(t, "dairy", p.Category)
}

func TestProduct_Validate(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, NewProduct("Хлеб", types.Zero(), "").Validate(ctx))

	err := NewProduct(" ", types.MustMoney("1"), "").Validate(ctx)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "name", appErr.Field())

	err = NewProduct("Хлеб", types.MustMoney("-0.01"), "").Validate(ctx)
	appErr, ok = apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Equal(t, "price", appErr.Field())
}

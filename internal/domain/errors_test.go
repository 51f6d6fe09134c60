package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrorsWrapErrValidation(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, ErrInvalidID, ErrValidation)
	assert.ErrorIs(t, ErrEmptyName, ErrValidation)
	assert.ErrorIs(t, ErrNegativeNumber, ErrValidation)
	assert.ErrorIs(t, ErrInvalidSaleStatus, ErrValidation)
}

package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAppError_PassesThroughAppErrors(t *testing.T) {
	appErr := GetAppError(ErrInvalidPromoCode)
	assert.Equal(t, 404, appErr.Code)
	assert.Equal(t, "Invalid promo code", appErr.Message)

	wrapped := fmt.Errorf("applying discount: %w", ErrInvalidPromoCode)
	assert.Equal(t, 404, GetAppError(wrapped).Code)
}

func TestGetAppError_SanitizesUnknownErrors(t *testing.T) {
	err := errors.New(`pq: connection refused host=db.internal port=5432`)

	appErr := GetAppError(err)
	assert.Equal(t, 500, appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.NotContains(t, appErr.Message, "db.internal")
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(ErrMissingFilter))
	assert.True(t, IsAppError(fmt.Errorf("purge: %w", ErrMissingFilter)))
	assert.False(t, IsAppError(errors.New("disk full")))
}

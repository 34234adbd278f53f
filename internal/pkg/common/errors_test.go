package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError_Wrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrTableSource.Wrap(cause)

	assert.Equal(t, "無法讀取替代對照表: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrTableSource)
	assert.NotErrorIs(t, err, ErrInvalidTable)
	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
}

func TestCustomError_IsThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("loading: %w", ErrInvalidRequest.Wrap(errors.New("bad")))

	var custom *CustomError
	assert.True(t, errors.As(err, &custom))
	assert.Equal(t, ErrCodeInvalidRequest, custom.Code)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestIsValidationError(t *testing.T) {
	v := NewValidationError("empty key")

	assert.True(t, IsValidationError(v))
	assert.True(t, IsValidationError(fmt.Errorf("table: %w", v)))
	assert.False(t, IsValidationError(errors.New("other")))
	assert.False(t, IsValidationError(nil))
}

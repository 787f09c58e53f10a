package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithf_KeepsSentinelIdentity(t *testing.T) {
	sentinel := New(CodeInvalidState, "invalid status change", http.StatusBadRequest)

	err := Withf(sentinel, "invalid status change from %s to %s", "inactive", "production")
	wrapped := fmt.Errorf("shed service: %w", err)

	assert.True(t, errors.Is(wrapped, sentinel))
	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidState, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	assert.Equal(t, "invalid status change from inactive to production", appErr.Message)
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, Wrap(nil, CodeInternalError, "x", http.StatusInternalServerError))
}

func TestError_IncludesCause(t *testing.T) {
	err := Wrap(errors.New("boom"), CodeInternalError, "failed", http.StatusInternalServerError)
	assert.Equal(t, "failed: boom", err.Error())
	assert.Equal(t, "Resource not found", ErrNotFound.Error())
}

package errors

import (
	"net/http"
	"testing"

	"medlink/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseErrorWithDetailsKeepsOriginal(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: required")

	assert.Equal(t, "email: required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", detailed.ErrorCode())
}

func TestWrapMessageStaysDiscoverable(t *testing.T) {
	wrapped := ErrInvalidToken.WrapMessage("verify bearer")

	assert.ErrorIs(t, wrapped, ErrInvalidToken)

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestSessionAndLookupUserNotFoundDiffer(t *testing.T) {
	assert.Equal(t, ErrSessionUserNotFound.ErrorCode(), ErrUserNotFound.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, ErrSessionUserNotFound.HTTPCode())
	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert message")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert message", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}

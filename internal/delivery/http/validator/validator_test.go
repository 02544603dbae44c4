package validator

import (
	"testing"

	domainerrors "medlink/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=PATIENT DOCTOR"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidator_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.io", Role: "DOCTOR", Date: "2025-03-01"}))
	assert.NoError(t, v.Validate(&sampleRequest{Email: "a@b.io"}))
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Role: "ADMIN", Date: "01/03/2025"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Contains(t, appErr.Details(), "email is required")
	assert.Contains(t, appErr.Details(), "role must be one of [PATIENT DOCTOR]")
	assert.Contains(t, appErr.Details(), "date must match 2006-01-02")
}

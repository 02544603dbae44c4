// Package handler contains the HTTP handlers of the API.
package handler

import (
	"strings"

	deliverycontext "medlink/internal/delivery/context"
	"medlink/internal/domain/entity"
	domainerrors "medlink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// normalizer is implemented by requests that clean up their fields before validation.
type normalizer interface {
	Normalize()
}

// bindAndValidate decodes the body into req, normalizes it and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("request body could not be decoded")
	}
	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}

	return c.Validate(req)
}

// normalizeEmail trims and lower-cases an address so the format check sees what gets stored.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// caller returns the identity attached by the session gate.
func caller(c echo.Context) (*entity.Identity, error) {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return nil, domainerrors.ErrNoToken
	}

	return identity, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(field + " must be a UUID")
	}

	return id, nil
}

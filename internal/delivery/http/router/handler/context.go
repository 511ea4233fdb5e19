// Package handler contains the HTTP handlers for the application.
package handler

import (
	domainerrors "kaelo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// viewerID returns the authenticated user's ID, or nil for anonymous requests.
func viewerID(c echo.Context) *uuid.UUID {
	if id, ok := c.Get("userID").(uuid.UUID); ok {
		return &id
	}

	return nil
}

// requireUserID returns the authenticated user's ID set by the auth middleware.
func requireUserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrNotAuthenticated
	}

	return id, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

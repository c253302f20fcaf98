package controllers

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "asset-system/pkg/errors"
)

// parseUUIDParam reads a path parameter as a UUID; a malformed value
// is a client error, never a 404.
func parseUUIDParam(ctx echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.BadRequest("invalid %s: %q", name, ctx.Param(name))
	}
	return id, nil
}

// queryUUID reads an optional UUID query parameter; absent or
// malformed values yield nil.
func queryUUID(values url.Values, name string) *uuid.UUID {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

package http

import (
	"net/http"

	"colis/internal/core/domain/model/access"
	"colis/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Headers set by the authenticating gateway in front of the service.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

const actorContextKey = "colis.actor"

// Actor is the authenticated caller of a request.
type Actor struct {
	ID   kernel.UUID
	Role access.Role
}

var errUnauthenticated = echo.NewHTTPError(http.StatusUnauthorized, "authentication required")

// actorMiddleware attaches the caller identity when both headers are
// present and well formed. Anonymous requests pass through; handlers that
// need an actor call requireActor.
func actorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawID := c.Request().Header.Get(HeaderUserID)
		rawRole := c.Request().Header.Get(HeaderUserRole)
		if rawID == "" && rawRole == "" {
			return next(c)
		}

		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return errUnauthenticated
		}
		role, err := access.ParseRole(rawRole)
		if err != nil {
			return errUnauthenticated
		}

		c.Set(actorContextKey, Actor{ID: id, Role: role})
		return next(c)
	}
}

func requireActor(c echo.Context) (Actor, error) {
	actor, ok := c.Get(actorContextKey).(Actor)
	if !ok {
		return Actor{}, errUnauthenticated
	}
	return actor, nil
}

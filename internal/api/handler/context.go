package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must
// be present and the role must be one of the four known roles, or the
// token is structurally valid but operationally unusable.
func ctxActor(c echo.Context) (ports.Actor, error) {
	userID, _ := c.Get("user_id").(string)
	roleStr, _ := c.Get("role").(string)
	if userID == "" || roleStr == "" {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return ports.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "token carries an unknown role")
	}

	return ports.Actor{UserID: userID, Role: role}, nil
}

// pathUUID reads a path parameter and rejects anything that is not a
// well-formed UUID before it can reach the data layer.
func pathUUID(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	if _, err := parseUUID(raw); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, name+" must be a valid UUID")
	}
	return raw, nil
}

func parseUUID(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

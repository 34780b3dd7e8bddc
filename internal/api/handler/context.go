package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/BALUCHANDRAMANDRA/Backend-Web/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware. Its
// presence proves the middleware ran; a blank value means the route was
// wired without authentication.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

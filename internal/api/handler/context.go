package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridehail/admin-api/internal/api/middleware"
	"github.com/ridehail/admin-api/internal/auth"
)

// callerClaims extracts the identity injected by the Auth middleware.
// A missing identity on a protected route means the middleware did not run;
// fail closed with 401 rather than proceeding anonymously.
func callerClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ridehail/admin-api/internal/api/metrics"
)

// RequireRole enforces role-based access control. The caller passes when its
// verified roles intersect the required set; an authenticated caller with no
// matching role gets 403, distinct from the 401 of a missing identity.
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	required := make(map[string]struct{}, len(requiredRoles))
	for _, r := range requiredRoles {
		required[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			for _, role := range claims.Roles {
				if _, allowed := required[role]; allowed {
					return next(c)
				}
			}

			metrics.AuthFailuresTotal.WithLabelValues("forbidden").Inc()
			return echo.NewHTTPError(http.StatusForbidden, "forbidden")
		}
	}
}

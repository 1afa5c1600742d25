package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ridehail/admin-api/internal/api/metrics"
	"github.com/ridehail/admin-api/internal/auth"
)

// claimsKey is the echo context key the verified claims are stored under.
// Each request gets a fresh context, so claims never leak across requests.
const claimsKey = "auth_claims"

// Auth validates the bearer token and injects the verified claims into the
// request context. The specific validation failure is logged, never returned:
// every invalid token collapses into the same 401.
func Auth(tokens *auth.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				log.Debug().Err(err).Msg("token rejected")
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom extracts the claims injected by Auth. The bool is false when the
// middleware did not run for this request.
func ClaimsFrom(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(claimsKey).(*auth.Claims)
	return claims, ok
}

// SetClaims injects claims directly, bypassing token validation. Intended for
// handler tests.
func SetClaims(c echo.Context, claims *auth.Claims) {
	c.Set(claimsKey, claims)
}

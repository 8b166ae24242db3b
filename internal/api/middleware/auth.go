package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	UsernameKey = "username"
	ClaimsKey   = "claims"
)

// Auth resolves the bearer credential to an identity and rejects revoked
// tokens. revoker may be nil when no revocation store is configured.
func Auth(tokens ports.TokenManager, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					return fmt.Errorf("check token revocation: %w", err)
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
				}
			}

			c.Set(UsernameKey, claims.Username)
			c.Set(ClaimsKey, claims)

			return next(c)
		}
	}
}

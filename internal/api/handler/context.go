package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/careledger/clinic-api/internal/api/middleware"
	"github.com/careledger/clinic-api/internal/core/ports"
)

// ctxUsername returns the identity resolved by the Auth middleware. Missing
// means the route was mounted without the middleware.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get(middleware.UsernameKey).(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}

func ctxClaims(c echo.Context) (*ports.TokenClaims, error) {
	claims, _ := c.Get(middleware.ClaimsKey).(*ports.TokenClaims)
	if claims == nil || claims.Username == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

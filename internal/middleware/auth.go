package middleware

import (
	"errors"
	"fundflow-backend/internal/service"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// RequireToken verifies the Bearer token and stores the decoded claims in the
// request context. Verification is pure; any failure short-circuits with 401
// before the handler runs.
func RequireToken(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims, err := authService.VerifyToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			c.Set(ClaimsKey, claims)
			if email, ok := claims["email"].(string); ok {
				c.Set(EmailKey, email)
			}

			return next(c)
		}
	}
}

// RequireAdmin must be chained after RequireToken: it trusts the email the
// token middleware stored and checks the identity's role against the store.
func RequireAdmin(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(EmailKey).(string)

			err := authService.RequireAdmin(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, service.ErrForbidden) {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
				}
				return err
			}

			return next(c)
		}
	}
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/i-am-Shekinah/alx-workspace-booking-app-backend/internal/pkg/token"
)

// Auth validates the bearer access token and injects its claims into context.
// Expired and malformed tokens are reported distinctly so clients can tell a
// stale session from a forged one.
func Auth(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No valid token provided")
			}

			claims, err := issuer.VerifyAccess(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return echo.NewHTTPError(http.StatusForbidden, "Token has expired")
				}
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			c.Set("userId", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}

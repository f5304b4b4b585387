package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/auth-system/internal/infrastructure/token"
)

// TokenVerifier reports whether a token is still the latest one issued to a user.
type TokenVerifier interface {
	IsCurrent(ctx context.Context, userID, accessToken string) (bool, error)
}

// Auth validates the bearer JWT and stores its subject as "user_id" on the
// context. When verifier is non-nil, tokens superseded by a later login are
// rejected as well.
func Auth(tokenSecret string, verifier TokenVerifier) echo.MiddlewareFunc {
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

			userID, err := token.Parse(parts[1], tokenSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if verifier != nil {
				current, err := verifier.IsCurrent(c.Request().Context(), userID, parts[1])
				if err != nil {
					return err
				}
				if !current {
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

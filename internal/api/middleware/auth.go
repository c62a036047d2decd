package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// CallerContextKey is where the Auth middleware stores the resolved user.
const CallerContextKey = "caller"

// SessionValidator resolves a bearer token to its user, or nil when the
// token fails signature or expiry checks or the subject no longer exists.
type SessionValidator interface {
	Validate(ctx context.Context, token string) *domain.User
}

// Auth resolves the bearer token to a user and injects it into the request
// context. The validator re-checks the subject against the credential store,
// so a deleted user is rejected even with an unexpired token.
func Auth(sessions SessionValidator) echo.MiddlewareFunc {
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

			caller := sessions.Validate(c.Request().Context(), parts[1])
			if caller == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CallerContextKey, caller)
			return next(c)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasknest/tasknest/internal/api/middleware"
	"github.com/tasknest/tasknest/internal/core/domain"
)

// currentUser extracts the caller injected by the Auth middleware. A missing
// caller means the middleware did not run on this route; reject with 401
// rather than proceeding without an identity.
func currentUser(c echo.Context) (*domain.User, error) {
	caller, _ := c.Get(middleware.CallerContextKey).(*domain.User)
	if caller == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return caller, nil
}

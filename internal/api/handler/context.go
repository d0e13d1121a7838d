package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskify/taskify-server/internal/api/middleware"
	"github.com/taskify/taskify-server/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its
// presence proves the middleware ran; a protected route registered
// without it is a wiring bug surfaced as 401, not a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextKeyUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return user, nil
}

package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/api/middleware"
	"github.com/repairdesk/support-api/internal/core/domain"
)

// currentSession returns the caller resolved by the Session middleware. Its
// absence means the route was mounted without authentication.
func currentSession(c echo.Context) (domain.Session, error) {
	sess, ok := middleware.SessionFrom(c)
	if !ok || sess.UserID == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "Access token missing or malformed")
	}
	return sess, nil
}

// bindAndValidate decodes the request body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return ve
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(req)
}

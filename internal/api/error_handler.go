package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/repairdesk/support-api/internal/api/handler"
	"github.com/repairdesk/support-api/internal/api/middleware"
	"github.com/repairdesk/support-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and client message.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every error as {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, handler.ErrorResponse{Message: msg})
	}
}

// domainErrors is checked in order; the first errors.Is match wins.
var domainErrors = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrMissingInput, http.StatusBadRequest, "Enter all inputs!"},
	{domain.ErrBusinessNameRequired, http.StatusBadRequest, "Business name is required for business accounts!"},
	{domain.ErrInvalidEmail, http.StatusBadRequest, "Invalid Email!"},
	{domain.ErrInvalidPassword, http.StatusBadRequest, "Invalid Password! Password must include at least one uppercase letter, special character, and number."},
	{domain.ErrUserExists, http.StatusConflict, "User already exists!"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{domain.ErrInvalidRefreshToken, http.StatusForbidden, "Invalid or expired refresh token"},
	{domain.ErrForbidden, http.StatusForbidden, middleware.ForbiddenMessage},
	{domain.ErrUserNotFound, http.StatusNotFound, "There is not any user!"},
	{domain.ErrSupportRequestNotFound, http.StatusNotFound, "There is not any support request!"},
	{domain.ErrJobNotFound, http.StatusNotFound, "There is not any job!"},
	{domain.ErrKnowledgeBaseNotFound, http.StatusNotFound, "There is not any knowledge base!"},
	{domain.ErrSparePartNotFound, http.StatusNotFound, "There is not any knowledge base!"},
	{domain.ErrTechnicianNotFound, http.StatusNotFound, "There is not any technician!"},
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}

	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			return de.code, de.msg
		}
	}

	// Echo's own errors (bind failures, 404/405 from the router).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal Server Error"
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/domain"
	"github.com/repairdesk/support-api/internal/core/ports"
)

// SessionKey is the context key holding the resolved domain.Session.
const SessionKey = "session"

// Session resolves the caller behind the user id set by Auth. It must run after Auth.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get(UserIDKey).(string)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Access token missing or malformed"})
			}

			sess, err := sessions.Resolve(c.Request().Context(), userID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"message": "User no longer exists"})
				}
				return err
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom returns the session stored by the Session middleware.
func SessionFrom(c echo.Context) (domain.Session, bool) {
	sess, ok := c.Get(SessionKey).(domain.Session)
	return sess, ok
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/repairdesk/support-api/internal/core/service"
)

// UserIDKey is the context key holding the authenticated user id.
const UserIDKey = "user_id"

const bearerPrefix = "Bearer "

// Auth verifies the HS256 bearer token signed with accessSecret and stores
// the user id from its claims under UserIDKey.
func Auth(accessSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"authHeader": authHeader,
					"message":    "Access token missing or malformed",
				})
			}

			userID, err := service.ParseUserID(strings.TrimPrefix(authHeader, bearerPrefix), accessSecret)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "Invalid or expired token"})
			}

			c.Set(UserIDKey, userID)
			return next(c)
		}
	}
}

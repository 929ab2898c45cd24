package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ForbiddenMessage is returned whenever the caller's role does not allow an action.
const ForbiddenMessage = "This action cannot be done due to the wrong role of the user!"

// RBAC enforces role-based access control on the resolved session.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := SessionFrom(c)
			if _, ok := allowed[sess.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": ForbiddenMessage})
			}
			return next(c)
		}
	}
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bookstore/bookstore-api/internal/api/middleware"
)

// caller extracts the identity resolved by the Auth middleware. An empty
// username means the request is anonymous; the Gate has already enforced the
// route's policy, so handlers only consult this when the operation itself
// depends on who is calling (order ownership, own-account lookups).
func caller(c echo.Context) (username string, roles []string) {
	username, _ = c.Get(middleware.CtxUsername).(string)
	roles, _ = c.Get(middleware.CtxRoles).([]string)
	return username, roles
}

// rawToken returns the bearer token the caller presented, if any.
func rawToken(c echo.Context) string {
	token, _ := c.Get(middleware.CtxToken).(string)
	return token
}

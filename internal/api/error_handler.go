package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. The
// message strings are machine-readable codes clients can branch on.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<code>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic codes. Duplicate usernames
	// get 400, not 409: clients branch on "usernameExists".
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "usernameExists"
	case errors.Is(err, domain.ErrIDAssigned):
		return http.StatusBadRequest, "idExists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "userNotFound"
	case errors.Is(err, domain.ErrBookNotFound):
		return http.StatusNotFound, "bookNotFound"
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "orderNotFound"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalidCredentials"
	case errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, "tokenRevoked"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

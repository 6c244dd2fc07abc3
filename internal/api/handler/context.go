package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bewerbungsportal/review-portal/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty role proves
// the middleware ran.
func ctxSession(c echo.Context) (domain.Session, error) {
	session, _ := c.Get("session").(domain.Session)
	if session.Role == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return session, nil
}

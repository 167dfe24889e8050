package web

import (
	"net/http"
	"strconv"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/hopkinton-cheetahs/rosterd/internal/services/auth"
	"github.com/labstack/echo/v4"
)

// sessionContextKey is where withSession stores the loaded session
const sessionContextKey = "session"

// withSession loads the stored session and attaches it to the request
// context. Requests without a session are rejected.
func (h *Handler) withSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := h.auth.CurrentSession(c.Request().Context(), &auth.CurrentSessionInput{})
		if err != nil {
			return writeError(c, err)
		}

		if out.Session == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not signed in"})
		}

		c.Set(sessionContextKey, out.Session)
		return next(c)
	}
}

// requireRole rejects requests whose session role is not in the allowed set
func requireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := currentSession(c)
			if session == nil || !allowed[session.Role] {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// currentSession returns the session stored by withSession, nil if absent
func currentSession(c echo.Context) *models.Session {
	session, ok := c.Get(sessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

// selectedYear resolves the partition year for a request: an explicit
// ?year= query wins, otherwise the session's selected year applies.
func selectedYear(c echo.Context) int {
	if raw := c.QueryParam("year"); raw != "" {
		if year, err := strconv.Atoi(raw); err == nil && year > 0 {
			return year
		}
	}
	if session := currentSession(c); session != nil {
		return session.Year
	}
	return 0
}

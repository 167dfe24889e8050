package web

import (
	"net/http"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/hopkinton-cheetahs/rosterd/internal/services/auth"
	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
}

type selectYearRequest struct {
	Year int `json:"year"`
}

type setPasswordRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Login checks a role's password and establishes the session
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.auth.Login(c.Request().Context(), &auth.LoginInput{
		Role:     models.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Session)
}

// Logout clears the session
func (h *Handler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context(), &auth.LogoutInput{}); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetSession returns the current session
func (h *Handler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, currentSession(c))
}

// SelectYear changes the session's partition year
func (h *Handler) SelectYear(c echo.Context) error {
	var req selectYearRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.auth.SelectYear(c.Request().Context(), &auth.SelectYearInput{Year: req.Year})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Session)
}

// SetPassword stores a new password for a role
func (h *Handler) SetPassword(c echo.Context) error {
	var req setPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	err := h.auth.SetPassword(c.Request().Context(), &auth.SetPasswordInput{
		Role:     models.Role(req.Role),
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

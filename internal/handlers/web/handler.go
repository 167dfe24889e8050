package web

import (
	"errors"
	"net/http"

	"github.com/hopkinton-cheetahs/rosterd/internal/services/auth"
	"github.com/hopkinton-cheetahs/rosterd/internal/services/payments"
	"github.com/hopkinton-cheetahs/rosterd/internal/services/roster"
	"github.com/labstack/echo/v4"
)

// Config holds dependencies for the web handler
type Config struct {
	// RosterService owns the record collections
	RosterService roster.Service

	// PaymentsService reconciles payments and standings
	PaymentsService payments.Service

	// AuthService manages sign-in and the selected year
	AuthService auth.Service
}

// Handler exposes one HTTP endpoint per user action. It holds no state of
// its own; confirmation prompts and re-rendering stay with the client.
type Handler struct {
	roster   roster.Service
	payments payments.Service
	auth     auth.Service
}

// New creates a new web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterService == nil {
		return nil, errors.New("roster service cannot be nil")
	}

	if cfg.PaymentsService == nil {
		return nil, errors.New("payments service cannot be nil")
	}

	if cfg.AuthService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	return &Handler{
		roster:   cfg.RosterService,
		payments: cfg.PaymentsService,
		auth:     cfg.AuthService,
	}, nil
}

// writeError translates service errors into HTTP responses
func writeError(c echo.Context, err error) error {
	var validationErr *roster.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, errorBody(err))
	case errors.Is(err, roster.ErrPlayerNotFound), errors.Is(err, roster.ErrGameNotFound):
		return c.JSON(http.StatusNotFound, errorBody(err))
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrNoSession):
		return c.JSON(http.StatusUnauthorized, errorBody(err))
	case errors.Is(err, auth.ErrUnknownRole), errors.Is(err, auth.ErrEmptyPassword):
		return c.JSON(http.StatusBadRequest, errorBody(err))
	default:
		return c.JSON(http.StatusInternalServerError, errorBody(err))
	}
}

func errorBody(err error) map[string]string {
	return map[string]string{"error": err.Error()}
}

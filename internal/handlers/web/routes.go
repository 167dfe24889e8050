package web

import (
	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires one route per user action onto the echo instance.
// Player and game management is captain-only, matching the navigation
// gating of the client.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/auth/login", h.Login)

	v1 := e.Group("/v1", h.withSession)
	v1.POST("/auth/logout", h.Logout)
	v1.GET("/session", h.GetSession)
	v1.PUT("/session/year", h.SelectYear)

	v1.GET("/players", h.ListPlayers)
	v1.GET("/games", h.ListGames)
	v1.GET("/availability", h.AvailabilityGrid)
	v1.POST("/availability/toggle", h.ToggleAvailability)
	v1.GET("/refreshments", h.ListRefreshments)
	v1.POST("/refreshments", h.AddRefreshment)
	v1.DELETE("/refreshments/:id", h.DeleteRefreshment)
	v1.GET("/payments", h.Payments)
	v1.GET("/matches", h.MatchesPlayed)
	v1.GET("/dashboard", h.Dashboard)

	captain := v1.Group("", requireRole(models.RoleCaptain))
	captain.PUT("/auth/password", h.SetPassword)
	captain.POST("/players", h.AddPlayer)
	captain.PUT("/players/:id", h.RenamePlayer)
	captain.DELETE("/players/:id", h.DeletePlayer)
	captain.POST("/games", h.AddGame)
	captain.PUT("/games/:id/date", h.EditGameDate)
	captain.DELETE("/games/:id", h.DeleteGame)
	captain.PUT("/games/:id/players-played", h.SetPlayersPlayed)
}

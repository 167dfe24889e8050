package web

import (
	"net/http"

	"github.com/hopkinton-cheetahs/rosterd/internal/services/roster"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type playerRequest struct {
	Name string `json:"name"`
}

type gameRequest struct {
	Date string `json:"date"`
}

type playersPlayedRequest struct {
	PlayerIDs []string `json:"playerIds"`
}

type refreshmentRequest struct {
	PlayerID string `json:"playerId"`
	Amount   string `json:"amount"`
}

// ListPlayers returns the roster
func (h *Handler) ListPlayers(c echo.Context) error {
	out, err := h.roster.ListPlayers(c.Request().Context(), &roster.ListPlayersInput{})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Players)
}

// AddPlayer adds a player to the roster
func (h *Handler) AddPlayer(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.roster.AddPlayer(c.Request().Context(), &roster.AddPlayerInput{Name: req.Name})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out.Player)
}

// RenamePlayer changes a player's display name
func (h *Handler) RenamePlayer(c echo.Context) error {
	var req playerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.roster.RenamePlayer(c.Request().Context(), &roster.RenamePlayerInput{
		PlayerID: c.Param("id"),
		Name:     req.Name,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Player)
}

// DeletePlayer removes a player and everything referencing them
func (h *Handler) DeletePlayer(c echo.Context) error {
	_, err := h.roster.DeletePlayer(c.Request().Context(), &roster.DeletePlayerInput{
		PlayerID: c.Param("id"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListGames returns the selected year's games, newest first
func (h *Handler) ListGames(c echo.Context) error {
	out, err := h.roster.ListGames(c.Request().Context(), &roster.ListGamesInput{
		Year: selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Games)
}

// AddGame schedules a game under the selected year
func (h *Handler) AddGame(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.roster.AddGame(c.Request().Context(), &roster.AddGameInput{
		Date: req.Date,
		Year: selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out.Game)
}

// EditGameDate changes a game's date
func (h *Handler) EditGameDate(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.roster.EditGameDate(c.Request().Context(), &roster.EditGameDateInput{
		GameID: c.Param("id"),
		Date:   req.Date,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Game)
}

// DeleteGame removes a game and its availability records
func (h *Handler) DeleteGame(c echo.Context) error {
	_, err := h.roster.DeleteGame(c.Request().Context(), &roster.DeleteGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetPlayersPlayed replaces a game's attendance list
func (h *Handler) SetPlayersPlayed(c echo.Context) error {
	var req playersPlayedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.roster.SetPlayersPlayed(c.Request().Context(), &roster.SetPlayersPlayedInput{
		GameID:    c.Param("id"),
		PlayerIDs: req.PlayerIDs,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Game)
}

// ListRefreshments returns the selected year's purchases grouped per player
func (h *Handler) ListRefreshments(c echo.Context) error {
	out, err := h.roster.ListRefreshments(c.Request().Context(), &roster.ListRefreshmentsInput{
		Year: selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Players)
}

// AddRefreshment records a purchase under the selected year
func (h *Handler) AddRefreshment(c echo.Context) error {
	var req refreshmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid amount"})
	}

	out, err := h.roster.AddRefreshment(c.Request().Context(), &roster.AddRefreshmentInput{
		PlayerID: req.PlayerID,
		Amount:   amount,
		Year:     selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out.Refreshment)
}

// DeleteRefreshment removes a single purchase record
func (h *Handler) DeleteRefreshment(c echo.Context) error {
	_, err := h.roster.DeleteRefreshment(c.Request().Context(), &roster.DeleteRefreshmentInput{
		RefreshmentID: c.Param("id"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

package web

import (
	"net/http"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/hopkinton-cheetahs/rosterd/internal/services/payments"
	"github.com/hopkinton-cheetahs/rosterd/internal/services/roster"
	"github.com/labstack/echo/v4"
)

type toggleAvailabilityRequest struct {
	PlayerID string `json:"playerId"`
	GameID   string `json:"gameId"`
}

// availabilityRow is one grid row: a player and their answer per game column
type availabilityRow struct {
	Player *models.Player                      `json:"player"`
	States map[string]models.AvailabilityState `json:"states"`
}

type availabilityGrid struct {
	Games []*models.Game     `json:"games"`
	Rows  []*availabilityRow `json:"rows"`
}

// AvailabilityGrid returns the upcoming games of the selected year as
// columns and every roster player's tri-state answers as rows. An empty
// Games slice tells the client to render its placeholder column.
func (h *Handler) AvailabilityGrid(c echo.Context) error {
	ctx := c.Request().Context()
	year := selectedYear(c)

	gamesOut, err := h.roster.UpcomingGames(ctx, &roster.UpcomingGamesInput{Year: year})
	if err != nil {
		return writeError(c, err)
	}

	playersOut, err := h.roster.ListPlayers(ctx, &roster.ListPlayersInput{})
	if err != nil {
		return writeError(c, err)
	}

	rows := make([]*availabilityRow, 0, len(playersOut.Players))
	for _, p := range playersOut.Players {
		row := &availabilityRow{
			Player: p,
			States: make(map[string]models.AvailabilityState, len(gamesOut.Games)),
		}
		for _, g := range gamesOut.Games {
			out, err := h.roster.GetAvailability(ctx, &roster.GetAvailabilityInput{
				PlayerID: p.ID,
				GameID:   g.ID,
			})
			if err != nil {
				return writeError(c, err)
			}
			row.States[g.ID] = out.Availability.State()
		}
		rows = append(rows, row)
	}

	return c.JSON(http.StatusOK, &availabilityGrid{
		Games: gamesOut.Games,
		Rows:  rows,
	})
}

// ToggleAvailability advances one answer through the tri-state cycle
func (h *Handler) ToggleAvailability(c echo.Context) error {
	var req toggleAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	out, err := h.roster.ToggleAvailability(c.Request().Context(), &roster.ToggleAvailabilityInput{
		PlayerID: req.PlayerID,
		GameID:   req.GameID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]models.AvailabilityState{"state": out.State})
}

// Payments returns the selected year's reconciliation in roster order
func (h *Handler) Payments(c echo.Context) error {
	out, err := h.payments.CalculatePayments(c.Request().Context(), &payments.CalculatePaymentsInput{
		Year: selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// MatchesPlayed returns the selected year's participation ranking
func (h *Handler) MatchesPlayed(c echo.Context) error {
	out, err := h.payments.MatchesPlayed(c.Request().Context(), &payments.MatchesPlayedInput{
		Year: selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out.Payments)
}

// Dashboard returns the selected year's summary figures
func (h *Handler) Dashboard(c echo.Context) error {
	out, err := h.payments.Summary(c.Request().Context(), &payments.SummaryInput{
		Year: selectedYear(c),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

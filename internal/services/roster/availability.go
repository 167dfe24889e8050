package roster

import (
	"context"
	"sort"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
)

// ToggleAvailability advances one player's answer for one game through the
// tri-state cycle: unset -> available -> unavailable -> unset. The last step
// deletes the record, so an explicit "no" and "haven't said" stay distinct.
func (s *service) ToggleAvailability(ctx context.Context, input *ToggleAvailabilityInput) (*ToggleAvailabilityOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	if findPlayer(data, input.PlayerID) == nil {
		return nil, NewValidationError("playerId", "unknown player id "+input.PlayerID)
	}

	if findGame(data, input.GameID) == nil {
		return nil, NewValidationError("gameId", "unknown game id "+input.GameID)
	}

	state := models.AvailabilityUnset
	existing := findAvailability(data, input.PlayerID, input.GameID)

	switch {
	case existing == nil:
		data.Availability = append(data.Availability, &models.Availability{
			PlayerID:  input.PlayerID,
			GameID:    input.GameID,
			Available: true,
		})
		state = models.AvailabilityAvailable

	case existing.Available:
		existing.Available = false
		state = models.AvailabilityUnavailable

	default:
		availability := data.Availability[:0]
		for _, a := range data.Availability {
			if a.PlayerID == input.PlayerID && a.GameID == input.GameID {
				continue
			}
			availability = append(availability, a)
		}
		data.Availability = availability
	}

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &ToggleAvailabilityOutput{State: state}, nil
}

// GetAvailability looks up one player's answer for one game.
// A nil Availability means unset.
func (s *service) GetAvailability(ctx context.Context, input *GetAvailabilityInput) (*GetAvailabilityOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	return &GetAvailabilityOutput{
		Availability: findAvailability(data, input.PlayerID, input.GameID),
	}, nil
}

// UpcomingGames returns the year's games dated on or after the cutoff,
// ascending by date. These are the availability grid's columns; an empty
// result means the grid shows its placeholder column.
func (s *service) UpcomingGames(ctx context.Context, input *UpcomingGamesInput) (*UpcomingGamesOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = s.clock.Now()
	}
	cutoff := asOf.Format(models.DateLayout)

	games := make([]*models.Game, 0)
	for _, g := range data.GamesInYear(input.Year) {
		if g.Date >= cutoff {
			games = append(games, g)
		}
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date < games[j].Date
	})

	return &UpcomingGamesOutput{Games: games}, nil
}

func findAvailability(data *models.TeamData, playerID, gameID string) *models.Availability {
	for _, a := range data.Availability {
		if a.PlayerID == playerID && a.GameID == gameID {
			return a
		}
	}
	return nil
}

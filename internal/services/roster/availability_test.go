package roster

import (
	"time"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
)

func (s *RosterServiceTestSuite) TestToggleCycleReturnsToUnset() {
	player := s.addPlayer("Alice")
	game := s.addGame("2026-06-01", 2026)

	get := func() *models.Availability {
		out, err := s.service.GetAvailability(s.ctx, &GetAvailabilityInput{
			PlayerID: player.ID,
			GameID:   game.ID,
		})
		s.Require().NoError(err)
		return out.Availability
	}

	toggle := func() models.AvailabilityState {
		out, err := s.service.ToggleAvailability(s.ctx, &ToggleAvailabilityInput{
			PlayerID: player.ID,
			GameID:   game.ID,
		})
		s.Require().NoError(err)
		return out.State
	}

	// unset before anything happens
	s.Nil(get())

	// unset -> available
	s.Equal(models.AvailabilityAvailable, toggle())
	record := get()
	s.Require().NotNil(record)
	s.True(record.Available)

	// available -> unavailable
	s.Equal(models.AvailabilityUnavailable, toggle())
	record = get()
	s.Require().NotNil(record)
	s.False(record.Available)

	// unavailable -> unset, the record is gone
	s.Equal(models.AvailabilityUnset, toggle())
	s.Nil(get())
}

func (s *RosterServiceTestSuite) TestToggleAvailabilityUnknownReferences() {
	player := s.addPlayer("Alice")
	game := s.addGame("2026-06-01", 2026)

	var validationErr *ValidationError

	_, err := s.service.ToggleAvailability(s.ctx, &ToggleAvailabilityInput{
		PlayerID: "missing",
		GameID:   game.ID,
	})
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("playerId", validationErr.Field)

	_, err = s.service.ToggleAvailability(s.ctx, &ToggleAvailabilityInput{
		PlayerID: player.ID,
		GameID:   "missing",
	})
	s.Require().ErrorAs(err, &validationErr)
	s.Equal("gameId", validationErr.Field)
}

func (s *RosterServiceTestSuite) TestToggleKeepsPairsIndependent() {
	alice := s.addPlayer("Alice")
	bob := s.addPlayer("Bob")
	game := s.addGame("2026-06-01", 2026)

	_, err := s.service.ToggleAvailability(s.ctx, &ToggleAvailabilityInput{
		PlayerID: alice.ID,
		GameID:   game.ID,
	})
	s.Require().NoError(err)

	out, err := s.service.GetAvailability(s.ctx, &GetAvailabilityInput{
		PlayerID: bob.ID,
		GameID:   game.ID,
	})
	s.Require().NoError(err)
	s.Nil(out.Availability)
}

func (s *RosterServiceTestSuite) TestUpcomingGamesFiltersAndSorts() {
	s.addGame("2026-05-01", 2026) // already played
	s.addGame("2026-06-15", 2026)
	s.addGame("2026-05-10", 2026) // on the cutoff day
	s.addGame("2026-06-01", 2026)
	s.addGame("2026-06-01", 2025) // other partition year

	out, err := s.service.UpcomingGames(s.ctx, &UpcomingGamesInput{
		Year: 2026,
		AsOf: time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	})
	s.Require().NoError(err)

	s.Require().Len(out.Games, 3)
	s.Equal("2026-05-10", out.Games[0].Date)
	s.Equal("2026-06-01", out.Games[1].Date)
	s.Equal("2026-06-15", out.Games[2].Date)
}

func (s *RosterServiceTestSuite) TestUpcomingGamesDefaultsToClock() {
	// The suite clock is pinned to 2026-05-10
	s.addGame("2026-05-09", 2026)
	s.addGame("2026-05-11", 2026)

	out, err := s.service.UpcomingGames(s.ctx, &UpcomingGamesInput{Year: 2026})
	s.Require().NoError(err)

	s.Require().Len(out.Games, 1)
	s.Equal("2026-05-11", out.Games[0].Date)
}

func (s *RosterServiceTestSuite) TestUpcomingGamesEmpty() {
	out, err := s.service.UpcomingGames(s.ctx, &UpcomingGamesInput{Year: 2026})
	s.Require().NoError(err)
	s.Empty(out.Games)
}

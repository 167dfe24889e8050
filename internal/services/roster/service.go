package roster

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/hopkinton-cheetahs/rosterd/internal/common/clock"
	"github.com/hopkinton-cheetahs/rosterd/internal/common/uuid"
	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	rosterRepo "github.com/hopkinton-cheetahs/rosterd/internal/repositories/roster"
	"github.com/shopspring/decimal"
)

// Config holds dependencies for the roster service
type Config struct {
	// RosterRepo persists the roster document
	RosterRepo rosterRepo.Repository

	// Clock supplies the current time
	Clock clock.Clock

	// UUID generates record identifiers
	UUID uuid.UUID
}

// service implements the Service interface
type service struct {
	rosterRepo rosterRepo.Repository
	clock      clock.Clock
	uuid       uuid.UUID
}

// New creates a new roster service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RosterRepo == nil {
		return nil, errors.New("roster repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUID == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &service{
		rosterRepo: cfg.RosterRepo,
		clock:      cfg.Clock,
		uuid:       cfg.UUID,
	}, nil
}

// AddPlayer adds a player to the roster
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}

	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:   s.uuid.NewUUID(),
		Name: name,
	}

	data.Players = append(data.Players, player)

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &AddPlayerOutput{Player: player}, nil
}

// RenamePlayer changes a player's display name
func (s *service) RenamePlayer(ctx context.Context, input *RenamePlayerInput) (*RenamePlayerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}

	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	player := findPlayer(data, input.PlayerID)
	if player == nil {
		return nil, ErrPlayerNotFound
	}

	player.Name = name

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &RenamePlayerOutput{Player: player}, nil
}

// DeletePlayer removes a player, cascading into attendance lists,
// availability records and refreshment records. The cascade and the
// player removal land in one document write. Deleting an absent player
// is a no-op.
func (s *service) DeletePlayer(ctx context.Context, input *DeletePlayerInput) (*DeletePlayerOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	if findPlayer(data, input.PlayerID) == nil {
		return &DeletePlayerOutput{Deleted: false}, nil
	}

	players := data.Players[:0]
	for _, p := range data.Players {
		if p.ID != input.PlayerID {
			players = append(players, p)
		}
	}
	data.Players = players

	for _, g := range data.Games {
		played := g.PlayersPlayed[:0]
		for _, id := range g.PlayersPlayed {
			if id != input.PlayerID {
				played = append(played, id)
			}
		}
		g.PlayersPlayed = played
	}

	availability := data.Availability[:0]
	for _, a := range data.Availability {
		if a.PlayerID != input.PlayerID {
			availability = append(availability, a)
		}
	}
	data.Availability = availability

	refreshments := data.Refreshments[:0]
	for _, r := range data.Refreshments {
		if r.PlayerID != input.PlayerID {
			refreshments = append(refreshments, r)
		}
	}
	data.Refreshments = refreshments

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &DeletePlayerOutput{Deleted: true}, nil
}

// ListPlayers returns the roster in roster order
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	return &ListPlayersOutput{Players: data.Players}, nil
}

// AddGame schedules a game. The partition year comes from the caller's
// selected year, never from the date.
func (s *service) AddGame(ctx context.Context, input *AddGameInput) (*AddGameOutput, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	if input.Year <= 0 {
		return nil, NewValidationError("year", "must be a positive year")
	}

	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:            s.uuid.NewUUID(),
		Date:          input.Date,
		Year:          input.Year,
		PlayersPlayed: []string{},
	}

	data.Games = append(data.Games, game)

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &AddGameOutput{Game: game}, nil
}

// EditGameDate changes a game's date. The partition year is left alone.
func (s *service) EditGameDate(ctx context.Context, input *EditGameDateInput) (*EditGameDateOutput, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	game := findGame(data, input.GameID)
	if game == nil {
		return nil, ErrGameNotFound
	}

	game.Date = input.Date

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &EditGameDateOutput{Game: game}, nil
}

// DeleteGame removes a game and its availability records in one document
// write. Deleting an absent game is a no-op.
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	if findGame(data, input.GameID) == nil {
		return &DeleteGameOutput{Deleted: false}, nil
	}

	games := data.Games[:0]
	for _, g := range data.Games {
		if g.ID != input.GameID {
			games = append(games, g)
		}
	}
	data.Games = games

	availability := data.Availability[:0]
	for _, a := range data.Availability {
		if a.GameID != input.GameID {
			availability = append(availability, a)
		}
	}
	data.Availability = availability

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &DeleteGameOutput{Deleted: true}, nil
}

// SetPlayersPlayed replaces a game's attendance list wholesale. Duplicates
// collapse to a set and every id must resolve to a roster player.
func (s *service) SetPlayersPlayed(ctx context.Context, input *SetPlayersPlayedInput) (*SetPlayersPlayedOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	game := findGame(data, input.GameID)
	if game == nil {
		return nil, ErrGameNotFound
	}

	seen := make(map[string]bool, len(input.PlayerIDs))
	played := make([]string, 0, len(input.PlayerIDs))
	for _, id := range input.PlayerIDs {
		if seen[id] {
			continue
		}
		if findPlayer(data, id) == nil {
			return nil, NewValidationError("playerIds", "unknown player id "+id)
		}
		seen[id] = true
		played = append(played, id)
	}

	game.PlayersPlayed = played

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &SetPlayersPlayedOutput{Game: game}, nil
}

// ListGames returns a year's games, newest first
func (s *service) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	games := data.GamesInYear(input.Year)
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date > games[j].Date
	})

	return &ListGamesOutput{Games: games}, nil
}

// AddRefreshment records one refreshment purchase
func (s *service) AddRefreshment(ctx context.Context, input *AddRefreshmentInput) (*AddRefreshmentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, NewValidationError("amount", "must be a positive amount")
	}

	if input.Year <= 0 {
		return nil, NewValidationError("year", "must be a positive year")
	}

	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	if findPlayer(data, input.PlayerID) == nil {
		return nil, NewValidationError("playerId", "unknown player id "+input.PlayerID)
	}

	refreshment := &models.Refreshment{
		ID:       s.uuid.NewUUID(),
		PlayerID: input.PlayerID,
		Amount:   input.Amount,
		Year:     input.Year,
	}

	data.Refreshments = append(data.Refreshments, refreshment)

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &AddRefreshmentOutput{Refreshment: refreshment}, nil
}

// DeleteRefreshment removes one purchase record. Deleting an absent record
// is a no-op.
func (s *service) DeleteRefreshment(ctx context.Context, input *DeleteRefreshmentInput) (*DeleteRefreshmentOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	refreshments := data.Refreshments[:0]
	for _, r := range data.Refreshments {
		if r.ID == input.RefreshmentID {
			found = true
			continue
		}
		refreshments = append(refreshments, r)
	}

	if !found {
		return &DeleteRefreshmentOutput{Deleted: false}, nil
	}

	data.Refreshments = refreshments

	if err := s.saveData(ctx, data); err != nil {
		return nil, err
	}

	return &DeleteRefreshmentOutput{Deleted: true}, nil
}

// ListRefreshments returns a year's purchases grouped per roster player
func (s *service) ListRefreshments(ctx context.Context, input *ListRefreshmentsInput) (*ListRefreshmentsOutput, error) {
	data, err := s.getData(ctx)
	if err != nil {
		return nil, err
	}

	yearRefreshments := data.RefreshmentsInYear(input.Year)

	players := make([]*PlayerRefreshments, 0, len(data.Players))
	for _, p := range data.Players {
		group := &PlayerRefreshments{
			Player:    p,
			Purchases: []*models.Refreshment{},
			Total:     decimal.Zero,
		}
		for _, r := range yearRefreshments {
			if r.PlayerID == p.ID {
				group.Purchases = append(group.Purchases, r)
				group.Total = group.Total.Add(r.Amount)
			}
		}
		players = append(players, group)
	}

	return &ListRefreshmentsOutput{Players: players}, nil
}

// getData loads the roster document
func (s *service) getData(ctx context.Context) (*models.TeamData, error) {
	out, err := s.rosterRepo.GetData(ctx, &rosterRepo.GetDataInput{})
	if err != nil {
		return nil, err
	}
	return out.Data, nil
}

// saveData writes the roster document back as one unit
func (s *service) saveData(ctx context.Context, data *models.TeamData) error {
	return s.rosterRepo.SaveData(ctx, &rosterRepo.SaveDataInput{Data: data})
}

func findPlayer(data *models.TeamData, id string) *models.Player {
	for _, p := range data.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func findGame(data *models.TeamData, id string) *models.Game {
	for _, g := range data.Games {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return NewValidationError("date", "cannot be empty")
	}
	if _, err := models.ParseDate(date); err != nil {
		return NewValidationError("date", "must be a date in "+models.DateLayout+" format")
	}
	return nil
}
